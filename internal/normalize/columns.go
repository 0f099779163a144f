package normalize

import (
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

// OrderColumns computes the single output column order for a record set.
// Two passes: first the union of every column across all records in
// first-seen order, then emission — each base column immediately followed by
// its Arabic companion when one exists anywhere in the set, with orphan
// Arabic columns appended afterwards in first-seen order. Running it on its
// own output returns the same order.
func OrderColumns(records []*domain.Record) []string {
	var seen []string
	present := map[string]bool{}
	for _, r := range records {
		for _, c := range r.Columns() {
			if !present[c] {
				present[c] = true
				seen = append(seen, c)
			}
		}
	}

	var out []string
	emitted := map[string]bool{}
	emit := func(c string) {
		if !emitted[c] {
			emitted[c] = true
			out = append(out, c)
		}
	}
	for _, c := range seen {
		if _, isArabic := domain.SplitArabicColumn(c); isArabic {
			continue
		}
		emit(c)
		if companion := c + domain.ArabicSuffix; present[companion] {
			emit(companion)
		}
	}
	// Orphan Arabic columns: translation-only data with no base counterpart.
	for _, c := range seen {
		emit(c)
	}
	return out
}

// Project reindexes every record to cols. Columns absent on a record are
// filled with "" so every row shares the exact header shape. This must be the
// last transformation step: a later mutation introducing a new column needs
// the order recomputed or the column is dropped.
func Project(records []*domain.Record, cols []string) []*domain.Record {
	out := make([]*domain.Record, 0, len(records))
	for _, r := range records {
		p := domain.NewRecord()
		for _, c := range cols {
			p.Set(c, r.Get(c))
		}
		out = append(out, p)
	}
	return out
}

// Synthesize orders and projects records into the final dataset.
func Synthesize(records []*domain.Record) *domain.Dataset {
	cols := OrderColumns(records)
	return &domain.Dataset{Columns: cols, Records: Project(records, cols)}
}
