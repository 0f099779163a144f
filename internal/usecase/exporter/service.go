package exporter

import (
	"context"
	"errors"
	"strings"

	exreg "github.com/SHADYEHABOCOR/gLabs/internal/adapters/exporter/registry"
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

type Service struct {
	Reg *exreg.Registry
}

func New(reg *exreg.Registry) *Service { return &Service{Reg: reg} }

type ExportArgs struct {
	Dataset  *domain.Dataset
	Format   string
	Basename string
}

type ExportResult struct {
	Filename string
	Content  []byte
}

// Export serializes an ordered dataset through the registered exporter for
// the requested format.
func (s *Service) Export(_ context.Context, a ExportArgs) (ExportResult, error) {
	exp, ok := s.Reg.Get(a.Format)
	if !ok {
		return ExportResult{}, errors.New("no exporter for format: " + a.Format)
	}
	content, err := exp.Export(a.Dataset)
	if err != nil {
		return ExportResult{}, err
	}
	base := a.Basename
	if base == "" {
		base = "menu"
	}
	base = strings.TrimSuffix(base, "."+a.Format)
	return ExportResult{Filename: base + "." + a.Format, Content: content}, nil
}
