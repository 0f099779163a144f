package normalize

import (
	"regexp"
	"strings"
)

// arabicThreshold is the number of Arabic-block characters required to
// classify a string as Arabic. The validated baseline is 1; raising it to 2
// would change how mixed-script strings classify and needs a product decision.
const arabicThreshold = 1

// ContainsArabic reports whether s is script-detected as Arabic: at least
// arabicThreshold characters in U+0600..U+06FF.
func ContainsArabic(s string) bool {
	n := 0
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			n++
			if n >= arabicThreshold {
				return true
			}
		}
	}
	return false
}

// TranslationMarker opens an inline translation continuation value.
const TranslationMarker = "[ar-ae]:"

var markerRE = regexp.MustCompile(`^\[([A-Za-z-]+)\]:\s*`)

// ParseMarker splits a bracket-marked value like "[ar-ae]: دجاج" into its
// language code and trimmed payload. ok is false when s carries no marker.
func ParseMarker(s string) (lang, text string, ok bool) {
	t := strings.TrimSpace(s)
	m := markerRE.FindStringSubmatch(t)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), strings.TrimSpace(t[len(m[0]):]), true
}

// IsArabicLang reports whether code names an Arabic variant.
func IsArabicLang(code string) bool {
	switch strings.ToLower(code) {
	case "ar", "ar-ae":
		return true
	}
	return false
}

// HasTranslationMarker reports whether s begins with an Arabic-variant
// bracket marker.
func HasTranslationMarker(s string) bool {
	lang, _, ok := ParseMarker(s)
	return ok && IsArabicLang(lang)
}
