package normalize

import (
	"regexp"
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

// columnAliases maps lowercase trimmed header names to canonical fields.
// When multiple raw headers mean the same thing, they all map here.
var columnAliases = map[string]domain.Field{
	// Identity
	"id":           domain.FieldItemID,
	"item id":      domain.FieldItemID,
	"item_id":      domain.FieldItemID,
	"itemid":       domain.FieldItemID,
	"menu item id": domain.FieldItemID,
	"product id":   domain.FieldItemID,
	"sku":          domain.FieldItemID,

	// Name
	"name":           domain.FieldName,
	"item name":      domain.FieldName,
	"item":           domain.FieldName,
	"menu item name": domain.FieldName,
	"menu item":      domain.FieldName,
	"product name":   domain.FieldName,
	"title":          domain.FieldName,
	"dish":           domain.FieldName,
	"dish name":      domain.FieldName,

	// Brand
	"brand":      domain.FieldBrandName,
	"brand name": domain.FieldBrandName,
	"brandname":  domain.FieldBrandName,
	"restaurant": domain.FieldBrandName,

	// Description
	"description":      domain.FieldDescription,
	"desc":             domain.FieldDescription,
	"item description": domain.FieldDescription,
	"details":          domain.FieldDescription,

	// Price
	"price":      domain.FieldPrice,
	"cost":       domain.FieldPrice,
	"amount":     domain.FieldPrice,
	"item price": domain.FieldPrice,
	"unit price": domain.FieldPrice,

	// Calories
	"calories":  domain.FieldCalories,
	"calorie":   domain.FieldCalories,
	"kcal":      domain.FieldCalories,
	"cal":       domain.FieldCalories,
	"energy":    domain.FieldCalories,
	"nutrition": domain.FieldCalories,

	// Category / tags
	"tag":       domain.FieldTag,
	"tags":      domain.FieldTag,
	"category":  domain.FieldTag,
	"menu":      domain.FieldTag,
	"section":   domain.FieldTag,
	"group":     domain.FieldTag,
	"item type": domain.FieldTag,

	// Modifier hierarchy
	"modifier group":      domain.FieldModifierGroupName,
	"modifier group name": domain.FieldModifierGroupName,
	"mod group":           domain.FieldModifierGroupName,
	"modifier group id":   domain.FieldModifierGroupID,
	"mod group id":        domain.FieldModifierGroupID,
	"modifier":            domain.FieldModifierName,
	"modifier name":       domain.FieldModifierName,
	"addon":               domain.FieldModifierName,
	"add-on":              domain.FieldModifierName,
	"option":              domain.FieldModifierName,
	"modifier id":         domain.FieldModifierID,
	"option id":           domain.FieldModifierID,

	// Sub-modifier hierarchy
	"sub modifier group":      domain.FieldSubModifierGroupName,
	"sub modifier group name": domain.FieldSubModifierGroupName,
	"submodifier group":       domain.FieldSubModifierGroupName,
	"sub modifier":            domain.FieldSubModifierName,
	"sub modifier name":       domain.FieldSubModifierName,
	"submodifier":             domain.FieldSubModifierName,

	// Annotations
	"classification": domain.FieldClassification,
	"class":          domain.FieldClassification,
	"allergen":       domain.FieldAllergen,
	"allergens":      domain.FieldAllergen,
	"routing label":  domain.FieldRoutingLabel,
	"routing":        domain.FieldRoutingLabel,
	"station":        domain.FieldRoutingLabel,

	// Status
	"active":    domain.FieldActive,
	"status":    domain.FieldActive,
	"enabled":   domain.FieldActive,
	"available": domain.FieldActive,

	// Images
	"image":      domain.FieldImageURL,
	"images":     domain.FieldImageURL,
	"image url":  domain.FieldImageURL,
	"image link": domain.FieldImageURL,
	"img":        domain.FieldImageURL,
	"photo":      domain.FieldImageURL,
	"picture":    domain.FieldImageURL,
	"url":        domain.FieldImageURL,
	"link":       domain.FieldImageURL,
	"drive link": domain.FieldImageURL,
}

// langSuffixRE matches headers like "name (ar)", "Description [AR-AE]" or
// "title(en)": a base name followed by a bracketed language code.
var langSuffixRE = regexp.MustCompile(`^(.*?)\s*[(\[](en|ar|ar-ae)[)\]]$`)

// ResolveColumn maps one raw header to its output column name. Language
// suffixes are resolved first: an Arabic variant lands on the base field's
// Arabic companion, an English one on the base field itself. Headers that
// match no alias pass through unchanged.
func ResolveColumn(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if m := langSuffixRE.FindStringSubmatch(key); m != nil {
		base := strings.TrimSpace(m[1])
		col := base
		if f, ok := columnAliases[base]; ok {
			col = string(f)
		}
		if IsArabicLang(m[2]) {
			return col + domain.ArabicSuffix
		}
		return col
	}
	if f, ok := columnAliases[key]; ok {
		return string(f)
	}
	// Unrecognized headers pass through byte-for-byte.
	return raw
}

// MapRow projects one raw row through ResolveColumn, keeping the header's
// column order. When two raw headers resolve to the same column the last
// one wins.
func MapRow(header []string, row map[string]string) *domain.Record {
	rec := domain.NewRecord()
	for _, h := range header {
		v, ok := row[h]
		if !ok {
			continue
		}
		rec.Set(ResolveColumn(h), v)
	}
	return rec
}
