package ports

import (
	"context"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

// AssetRepository stores image payloads under derived identity keys.
// Get returns (nil, nil) when no asset exists for the key.
type AssetRepository interface {
	Get(ctx context.Context, key string) (*domain.Asset, error)
	Put(ctx context.Context, a *domain.Asset) error
	ListKeys(ctx context.Context) ([]string, error)
}
