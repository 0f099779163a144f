package normalize

import (
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// groupFields are blanked when a modifier-only row seeds a new accumulator:
// the group is inherited conceptually from the last group row, not repeated.
var groupFields = []domain.Field{
	domain.FieldModifierGroupID,
	domain.FieldModifierGroupName,
	domain.FieldModifierGroupName.Arabic(),
}

// Flatten re-expresses a two-level modifier-group/modifier export as one flat
// record per modifier. A group row with no following modifier rows still
// emits its one record; dropping it would lose group names and their
// translations.
func Flatten(t ports.Table, defaultCurrency string) ClassifyResult {
	var res ClassifyResult
	currencies := map[string]bool{}
	var acc *domain.Record

	flush := func() {
		if acc == nil || acc.Empty() {
			acc = nil
			return
		}
		if code := splitRecordPrice(acc, defaultCurrency); code != "" && !currencies[code] {
			currencies[code] = true
			res.Currencies = append(res.Currencies, code)
		}
		res.Records = append(res.Records, acc)
		acc = nil
	}

	for i, raw := range t.Rows {
		rec := MapRow(t.Header, raw)
		groupID := strings.TrimSpace(rec.GetField(domain.FieldModifierGroupID))
		modID := strings.TrimSpace(rec.GetField(domain.FieldModifierID))

		if groupID == "" && modID == "" {
			if f, val, ok := markedModifierName(rec); ok {
				if acc == nil {
					res.Anomalies = append(res.Anomalies, domain.Anomaly{
						Kind:  domain.AnomalyOrphanTranslation,
						Row:   i + 2,
						Value: val,
					})
					continue
				}
				mergeModifierTranslation(acc, rec, f)
				res.ArabicFound++
			}
			// Rows with no ids and no marker carry nothing to flatten.
			continue
		}

		flush()
		acc = seedModifier(rec, groupID == "")
	}
	flush()
	return res
}

// markedModifierName finds a bracket-marked Arabic value in the group-name or
// modifier-name column of an id-less row.
func markedModifierName(rec *domain.Record) (domain.Field, string, bool) {
	for _, f := range []domain.Field{domain.FieldModifierGroupName, domain.FieldModifierName} {
		v := rec.GetField(f)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if lang, _, ok := ParseMarker(v); ok && IsArabicLang(lang) {
			return f, v, true
		}
	}
	return "", "", false
}

func mergeModifierTranslation(acc, row *domain.Record, f domain.Field) {
	if _, text, ok := ParseMarker(row.GetField(f)); ok && text != "" {
		acc.SetField(f.Arabic(), text)
	}
	if d := row.GetField(domain.FieldDescription); d != "" {
		if lang, text, ok := ParseMarker(d); ok && IsArabicLang(lang) && text != "" {
			acc.SetField(domain.FieldDescription.Arabic(), text)
		}
	}
}

// seedModifier starts a new accumulator from a group or modifier row. Arabic
// text found directly in the group-name or modifier-name column is moved to
// its companion so the base column is always left as a translation target.
func seedModifier(rec *domain.Record, modifierOnly bool) *domain.Record {
	acc := rec.Clone()
	if modifierOnly {
		for _, f := range groupFields {
			acc.Delete(string(f))
		}
	}
	for _, f := range []domain.Field{domain.FieldModifierGroupName, domain.FieldModifierName} {
		v := acc.GetField(f)
		if v != "" && ContainsArabic(v) {
			acc.SetField(f.Arabic(), v)
			acc.SetField(f, "")
		}
	}
	return acc
}
