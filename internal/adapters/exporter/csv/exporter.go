package csv

import (
	"bytes"
	"encoding/csv"

	"github.com/SHADYEHABOCOR/gLabs/internal/adapters/exporter/redact"
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

type Exporter struct {
	Comma rune
}

func New() *Exporter { return &Exporter{Comma: ','} }

func (e *Exporter) Format() string { return "csv" }

// Export writes the dataset in its synthesized column order. Inline
// data-URI image values are redacted to the placeholder token.
func (e *Exporter) Export(ds *domain.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if e.Comma != 0 {
		w.Comma = e.Comma
	}
	if err := w.Write(ds.Columns); err != nil {
		return nil, err
	}
	row := make([]string, len(ds.Columns))
	for _, rec := range ds.Records {
		for i, c := range ds.Columns {
			row[i] = redact.Value(c, rec.Get(c))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
