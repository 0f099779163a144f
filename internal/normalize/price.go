package normalize

import (
	"regexp"
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

var (
	currencyPrefixRE = regexp.MustCompile(`^([A-Za-z]{3})\s+(.+)$`)
	numberRE         = regexp.MustCompile(`^-?\d+(?:[.,]\d+)?$`)
	priceColumnRE    = regexp.MustCompile(`^Price\[([A-Z]{3})\]$`)
)

// SplitPrice parses a raw price value into a 3-letter currency code and an
// amount. "AED 25.50" yields ("AED", "25.50"); a bare number yields the
// default code. ok is false when the value is blank or not a price at all.
func SplitPrice(raw, defaultCode string) (code, amount string, ok bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", "", false
	}
	if m := currencyPrefixRE.FindStringSubmatch(v); m != nil && numberRE.MatchString(strings.TrimSpace(m[2])) {
		return strings.ToUpper(m[1]), strings.TrimSpace(m[2]), true
	}
	if numberRE.MatchString(v) {
		return strings.ToUpper(defaultCode), v, true
	}
	return "", "", false
}

// PriceColumn names the currency-split column for a code, e.g. "Price[AED]".
func PriceColumn(code string) string {
	return string(domain.FieldPrice) + "[" + strings.ToUpper(code) + "]"
}

// SplitPriceColumn reports whether col is a currency-split price column and
// returns its code.
func SplitPriceColumn(col string) (string, bool) {
	m := priceColumnRE.FindStringSubmatch(col)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeActive coerces status-style values to "yes"/"no", leaving
// unrecognized values untouched.
func NormalizeActive(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1", "active", "enabled", "available":
		return "yes"
	case "no", "n", "false", "0", "inactive", "disabled", "unavailable":
		return "no"
	}
	return v
}
