package normalize

import (
	"reflect"
	"testing"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

func rec(pairs ...string) *domain.Record {
	r := domain.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func TestOrderColumnsPairsCompanions(t *testing.T) {
	records := []*domain.Record{
		rec("Name", "Burger", "Description", "Good", "Price[AED]", "10"),
		rec("Name", "Wrap", "NameArabic", "راب", "DescriptionArabic", "وصف"),
	}
	got := OrderColumns(records)
	want := []string{"Name", "NameArabic", "Description", "DescriptionArabic", "Price[AED]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestOrderColumnsOrphanArabicAppended(t *testing.T) {
	records := []*domain.Record{
		rec("Name", "Burger", "TagArabic", "وجبات"),
	}
	got := OrderColumns(records)
	want := []string{"Name", "TagArabic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestOrderColumnsIdempotent(t *testing.T) {
	records := []*domain.Record{
		rec("Name", "a", "Description", "b"),
		rec("NameArabic", "ج", "Tag", "d", "Price[USD]", "5"),
	}
	first := OrderColumns(records)
	ds := Synthesize(records)
	second := OrderColumns(ds.Records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("not idempotent: %v then %v", first, second)
	}
	if !reflect.DeepEqual(ds.Columns, second) {
		t.Fatalf("dataset columns %v != reorder %v", ds.Columns, second)
	}
}

func TestProjectFillsSparseRows(t *testing.T) {
	records := []*domain.Record{
		rec("A", "1", "B", "2"),
		rec("A", "3", "C", "4"),
	}
	ds := Synthesize(records)
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(ds.Columns, want) {
		t.Fatalf("columns = %v, want %v", ds.Columns, want)
	}
	for i, r := range ds.Records {
		for _, c := range want {
			if !r.Has(c) {
				t.Errorf("record %d missing column %q", i, c)
			}
		}
	}
	if got := ds.Records[0].Get("C"); got != "" {
		t.Errorf("missing value filled with %q, want empty string", got)
	}
	if got := ds.Records[1].Get("B"); got != "" {
		t.Errorf("missing value filled with %q, want empty string", got)
	}
}
