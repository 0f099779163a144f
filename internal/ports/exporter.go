package ports

import "github.com/SHADYEHABOCOR/gLabs/internal/domain"

type Exporter interface {
	Format() string
	Export(ds *domain.Dataset) ([]byte, error)
}
