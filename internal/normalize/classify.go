package normalize

import (
	"fmt"
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// ClassifyResult is the outcome of one classification pass.
type ClassifyResult struct {
	Records       []*domain.Record
	Anomalies     []domain.Anomaly
	ArabicFound   int
	AutoGenerated int
	Currencies    []string
}

// nameFields orders the identity name columns from most to least specific;
// continuation routing uses the first one that carries a value.
var nameFields = []domain.Field{
	domain.FieldName,
	domain.FieldModifierName,
	domain.FieldModifierGroupName,
}

// Classify folds the normalized row sequence into primary records, absorbing
// translation continuation rows into the record that precedes them. The fold
// carries the current primary record explicitly; there is no package state.
func Classify(t ports.Table, defaultCurrency string) ClassifyResult {
	var res ClassifyResult
	currencies := map[string]bool{}
	var current *domain.Record

	for i, raw := range t.Rows {
		rec := MapRow(t.Header, raw)
		displayRow := i + 2 // 1-indexed with the header on row 1

		if f, val, ok := continuationName(rec); ok {
			if current == nil {
				res.Anomalies = append(res.Anomalies, domain.Anomaly{
					Kind:  domain.AnomalyOrphanTranslation,
					Row:   displayRow,
					Value: val,
				})
				continue
			}
			absorb(current, rec, f)
			res.ArabicFound++
			continue
		}

		if !isPrimary(rec) {
			// Neither identity nor name: dead row, skipped silently.
			continue
		}

		if strings.TrimSpace(rec.GetField(domain.FieldItemID)) == "" {
			rec.SetField(domain.FieldItemID, fmt.Sprintf("auto-gen-%d", res.AutoGenerated))
			res.AutoGenerated++
		}
		if code := splitRecordPrice(rec, defaultCurrency); code != "" && !currencies[code] {
			currencies[code] = true
			res.Currencies = append(res.Currencies, code)
		}
		if rec.Has(string(domain.FieldActive)) {
			rec.SetField(domain.FieldActive, NormalizeActive(rec.GetField(domain.FieldActive)))
		}
		res.Records = append(res.Records, rec)
		current = rec
	}
	return res
}

// continuationName reports whether rec is a translation continuation row:
// empty ItemId and a bracket-marked value in its most specific name field.
// It returns the field that carried the marker and the raw marked value.
func continuationName(rec *domain.Record) (domain.Field, string, bool) {
	if strings.TrimSpace(rec.GetField(domain.FieldItemID)) != "" {
		return "", "", false
	}
	for _, f := range nameFields {
		v := rec.GetField(f)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if HasTranslationMarker(v) {
			return f, v, true
		}
		return "", "", false
	}
	return "", "", false
}

// absorb writes the continuation row's marked values into the Arabic
// companions of the current record.
func absorb(current, row *domain.Record, f domain.Field) {
	if _, text, ok := ParseMarker(row.GetField(f)); ok && text != "" {
		current.SetField(f.Arabic(), text)
	}
	if d := row.GetField(domain.FieldDescription); d != "" {
		if lang, text, ok := ParseMarker(d); ok && IsArabicLang(lang) && text != "" {
			current.SetField(domain.FieldDescription.Arabic(), text)
		}
	}
}

func isPrimary(rec *domain.Record) bool {
	if strings.TrimSpace(rec.GetField(domain.FieldItemID)) != "" {
		return true
	}
	for _, f := range nameFields {
		if strings.TrimSpace(rec.GetField(f)) != "" {
			return true
		}
	}
	return false
}

// splitRecordPrice converts a raw Price value into its Price[CODE] column.
// The raw Price column never survives: split columns and the raw column are
// mutually exclusive in the output. It returns the detected code, or "" when
// the record carried no price.
func splitRecordPrice(rec *domain.Record, defaultCurrency string) string {
	if !rec.Has(string(domain.FieldPrice)) {
		return ""
	}
	raw := rec.GetField(domain.FieldPrice)
	rec.Delete(string(domain.FieldPrice))
	code, amount, ok := SplitPrice(raw, defaultCurrency)
	if !ok {
		// Non-numeric text like "market price" keeps its value under the
		// default code instead of resurrecting the raw column.
		if v := strings.TrimSpace(raw); v != "" {
			code = strings.ToUpper(defaultCurrency)
			rec.Set(PriceColumn(code), v)
			return code
		}
		return ""
	}
	rec.Set(PriceColumn(code), amount)
	return code
}
