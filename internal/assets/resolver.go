package assets

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// DefaultSimilarityThreshold is the minimum normalized edit-distance score
// for a fuzzy key match.
const DefaultSimilarityThreshold = 0.75

// Resolver looks stored image assets up by record identity, trying
// progressively looser strategies: exact id key, exact name key, fuzzy
// similarity above the threshold, then substring containment.
type Resolver struct {
	repo      ports.AssetRepository
	threshold float64
	log       *zap.Logger
}

func NewResolver(repo ports.AssetRepository, threshold float64, log *zap.Logger) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &Resolver{repo: repo, threshold: threshold, log: log}
}

// Resolve returns the best stored asset for an item, or (nil, nil) when no
// strategy matches. Unresolved records stay eligible for synthetic
// generation downstream.
func (r *Resolver) Resolve(ctx context.Context, id, name string) (*domain.Asset, error) {
	idKey := ""
	// Auto-generated ids are run-scoped and never stable store keys.
	if !strings.HasPrefix(id, "auto-gen-") {
		idKey = DeriveKey(id)
	}
	nameKey := DeriveKey(name)

	for _, key := range []string{idKey, nameKey} {
		if key == "" {
			continue
		}
		a, err := r.repo.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if a != nil {
			return a, nil
		}
	}
	if nameKey == "" {
		return nil, nil
	}

	keys, err := r.repo.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	if key := bestFuzzy(nameKey, keys, r.threshold); key != "" {
		r.log.Debug("fuzzy image match", zap.String("name_key", nameKey), zap.String("matched", key))
		return r.repo.Get(ctx, key)
	}
	for _, key := range keys {
		if containsKey(key, nameKey) {
			r.log.Debug("substring image match", zap.String("name_key", nameKey), zap.String("matched", key))
			return r.repo.Get(ctx, key)
		}
	}
	return nil, nil
}

func bestFuzzy(target string, keys []string, threshold float64) string {
	best := ""
	bestScore := threshold
	for _, key := range keys {
		score := Similarity(target, key)
		if score > bestScore || (score == bestScore && best == "") {
			best = key
			bestScore = score
		}
	}
	return best
}

func containsKey(a, b string) bool {
	return strings.Contains(a, strings.TrimPrefix(b, KeyNamespace)) ||
		strings.Contains(b, strings.TrimPrefix(a, KeyNamespace))
}
