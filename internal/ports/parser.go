package ports

// Table is one parsed sheet: the header in original column order plus one
// value map per data row. Row maps are keyed by the raw header strings.
type Table struct {
	Header []string
	Rows   []map[string]string
}

type Parser interface {
	Format() string
	Parse(data []byte) (Table, error)
}
