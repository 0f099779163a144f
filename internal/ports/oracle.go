package ports

import (
	"context"
	"errors"
)

// Direction selects the target language of a translation batch.
type Direction string

const (
	ToArabic  Direction = "ar"
	ToEnglish Direction = "en"
)

// ErrRateLimited is returned by collaborators when the remote service refuses
// further work. The caller stops launching new batches but keeps completed
// results.
var ErrRateLimited = errors.New("rate limited")

// TranslationRequest carries the fields of one record that need translating.
// A field submitted empty must come back empty; the oracle never fabricates
// content absent from the source.
type TranslationRequest struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

type TranslationResult struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// Oracle is the batched text-translation collaborator.
type Oracle interface {
	Translate(ctx context.Context, dir Direction, reqs []TranslationRequest) ([]TranslationResult, error)
}

// NutritionRequest asks for a calorie estimate for one named item.
type NutritionRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type NutritionResult struct {
	ID       string `json:"id"`
	Calories string `json:"calories"`
}

type NutritionEstimator interface {
	Estimate(ctx context.Context, reqs []NutritionRequest) ([]NutritionResult, error)
}
