package xlsxparser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Format() string { return "xlsx" }

// Parse reads the first sheet of an xlsx workbook into a raw table. Only one
// sheet is consumed; the first non-blank row is the header.
func (p *Parser) Parse(data []byte) (ports.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return ports.Table{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ports.Table{}, errors.New("no sheets found")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ports.Table{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	start := -1
	for i, row := range rows {
		if !allBlank(row) {
			start = i
			break
		}
	}
	if start == -1 {
		return ports.Table{}, errors.New("sheet has no header row")
	}

	header := rows[start]
	t := ports.Table{Header: header}
	for _, row := range rows[start+1:] {
		m := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		t.Rows = append(t.Rows, m)
	}
	return t, nil
}

func allBlank(ss []string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
