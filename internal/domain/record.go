package domain

import "strings"

// Field is a canonical column name recognized by the pipeline. Heterogeneous
// input headers are normalized into these; headers that match nothing are
// passed through under their original name.
type Field string

const (
	FieldItemID               Field = "ItemId"
	FieldName                 Field = "Name"
	FieldDescription          Field = "Description"
	FieldBrandName            Field = "BrandName"
	FieldModifierGroupID      Field = "ModifierGroupId"
	FieldModifierGroupName    Field = "ModifierGroupName"
	FieldModifierID           Field = "ModifierId"
	FieldModifierName         Field = "ModifierName"
	FieldSubModifierGroupName Field = "SubModifierGroupName"
	FieldSubModifierName      Field = "SubModifierName"
	FieldClassification       Field = "Classification"
	FieldAllergen             Field = "Allergen"
	FieldTag                  Field = "Tag"
	FieldRoutingLabel         Field = "RoutingLabel"
	FieldPrice                Field = "Price"
	FieldCalories             Field = "Calories"
	FieldActive               Field = "Active"
	FieldImageURL             Field = "ImageUrl"
	FieldImageSource          Field = "ImageSource"
)

// ArabicSuffix marks the bilingual companion column of a base field.
const ArabicSuffix = "Arabic"

// Arabic returns the companion field holding the Arabic variant of f.
func (f Field) Arabic() Field { return f + ArabicSuffix }

// BilingualFields are the fields that carry an implicit Arabic companion.
var BilingualFields = []Field{
	FieldName,
	FieldDescription,
	FieldBrandName,
	FieldModifierGroupName,
	FieldModifierName,
	FieldSubModifierGroupName,
	FieldSubModifierName,
	FieldClassification,
	FieldAllergen,
	FieldTag,
	FieldRoutingLabel,
}

// SplitArabicColumn reports whether col is an Arabic companion column and, if
// so, returns its base column name.
func SplitArabicColumn(col string) (string, bool) {
	base := strings.TrimSuffix(col, ArabicSuffix)
	if base == col || base == "" {
		return "", false
	}
	return base, true
}

// ImageSource describes where a record's image came from.
type ImageSource string

const (
	ImageSourceExcel     ImageSource = "excel"
	ImageSourceDatabase  ImageSource = "database"
	ImageSourceGenerated ImageSource = "generated"
	ImageSourceNone      ImageSource = "none"
)

// Record is one normalized menu item or flattened modifier: a mapping from
// column name to scalar value that remembers the order columns were first set.
// Pass-through columns from unrecognized headers live here beside canonical
// fields under their original names.
type Record struct {
	cols []string
	vals map[string]string
}

func NewRecord() *Record {
	return &Record{vals: map[string]string{}}
}

// Set writes v under col, registering the column on first write.
// Last write wins.
func (r *Record) Set(col, v string) {
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = v
}

func (r *Record) SetField(f Field, v string) { r.Set(string(f), v) }

func (r *Record) Get(col string) string { return r.vals[col] }

func (r *Record) GetField(f Field) string { return r.vals[string(f)] }

func (r *Record) Has(col string) bool { _, ok := r.vals[col]; return ok }

// Delete removes col and its value entirely.
func (r *Record) Delete(col string) {
	if _, ok := r.vals[col]; !ok {
		return
	}
	delete(r.vals, col)
	for i, c := range r.cols {
		if c == col {
			r.cols = append(r.cols[:i], r.cols[i+1:]...)
			break
		}
	}
}

// Columns returns the record's column names in first-set order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

func (r *Record) Len() int { return len(r.cols) }

// Empty reports whether the record has no non-blank value.
func (r *Record) Empty() bool {
	for _, v := range r.vals {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r *Record) Clone() *Record {
	c := &Record{cols: make([]string, len(r.cols)), vals: make(map[string]string, len(r.vals))}
	copy(c.cols, r.cols)
	for k, v := range r.vals {
		c.vals[k] = v
	}
	return c
}
