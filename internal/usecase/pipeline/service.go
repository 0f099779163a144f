package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/assets"
	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/normalize"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/jobs"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/reconciler"
)

// Mode selects which transformation pipeline a run uses.
type Mode string

const (
	ModeMenu      Mode = "menu"
	ModeModifiers Mode = "modifiers"
)

// Options configure one transformation run.
type Options struct {
	Mode            Mode
	EnsureArabic    bool
	EnsureEnglish   bool
	ResolveImages   bool
	EstimateCal     bool
	DefaultCurrency string
	Progress        func(done, total int)
}

// Result is the run outcome: partial results are always returned, anomalies
// ride alongside rather than aborting the run.
type Result struct {
	Dataset *domain.Dataset
	Summary domain.Summary
}

type Deps struct {
	Reconciler *reconciler.Service
	Nutrition  ports.NutritionEstimator
	Resolver   *assets.Resolver
	Pool       *jobs.Pool
	BatchSize  int
	Log        *zap.Logger
}

// Service sequences the normalization pipeline: header mapping and
// classification, bilingual reconciliation, enrichment, then column order
// synthesis as the final step.
type Service struct{ d Deps }

func New(d Deps) *Service {
	if d.BatchSize < 1 {
		d.BatchSize = reconciler.DefaultBatchSize
	}
	return &Service{d: d}
}

func (s *Service) Run(ctx context.Context, t ports.Table, opts Options) (Result, error) {
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "AED"
	}
	summary := domain.Summary{RunID: uuid.NewString(), TotalRows: len(t.Rows)}

	if len(t.Rows) == 0 {
		summary.Anomalies = append(summary.Anomalies, domain.Anomaly{Kind: domain.AnomalyEmptyDataset})
		summary.ZeroItems = true
		return Result{Dataset: &domain.Dataset{}, Summary: summary}, nil
	}

	var cr normalize.ClassifyResult
	if opts.Mode == ModeModifiers {
		cr = normalize.Flatten(t, opts.DefaultCurrency)
	} else {
		cr = normalize.Classify(t, opts.DefaultCurrency)
	}
	summary.Items = len(cr.Records)
	summary.ArabicTranslationsFound = cr.ArabicFound
	summary.AutoGeneratedIDs = cr.AutoGenerated
	summary.Currencies = cr.Currencies
	summary.Anomalies = append(summary.Anomalies, cr.Anomalies...)

	if len(cr.Records) == 0 {
		summary.Anomalies = append(summary.Anomalies, domain.Anomaly{Kind: domain.AnomalyZeroItems})
		summary.ZeroItems = true
		return Result{Dataset: &domain.Dataset{}, Summary: summary}, nil
	}

	fields := bilingualFields(opts.Mode)
	if opts.EnsureArabic {
		st := s.d.Reconciler.EnsureArabic(ctx, cr.Records, fields, opts.Progress)
		summary.AlreadyArabic += st.AlreadyArabic
		summary.Translated += st.Translated
		summary.FailedBatches += st.FailedBatches
	}
	if opts.EnsureEnglish {
		st := s.d.Reconciler.EnsureEnglish(ctx, cr.Records, fields, opts.Progress)
		summary.Translated += st.Translated
		summary.FailedBatches += st.FailedBatches
	}

	if opts.ResolveImages && s.d.Resolver != nil {
		summary.ImagesResolved = s.resolveImages(ctx, cr.Records)
	}
	if opts.EstimateCal && s.d.Nutrition != nil {
		done, failed := s.estimateCalories(ctx, cr.Records)
		summary.CaloriesEstimated = done
		summary.FailedBatches += failed
	}

	ds := normalize.Synthesize(cr.Records)
	s.d.Log.Info("run finished",
		zap.String("run_id", summary.RunID),
		zap.String("mode", string(opts.Mode)),
		zap.Int("rows", summary.TotalRows),
		zap.Int("items", summary.Items),
		zap.Int("anomalies", len(summary.Anomalies)),
	)
	return Result{Dataset: ds, Summary: summary}, nil
}

func bilingualFields(mode Mode) []domain.Field {
	if mode == ModeModifiers {
		return []domain.Field{
			domain.FieldModifierGroupName,
			domain.FieldModifierName,
			domain.FieldSubModifierGroupName,
			domain.FieldSubModifierName,
			domain.FieldDescription,
		}
	}
	return domain.BilingualFields
}

// resolveImages assigns stored images to records that arrived without one.
// The store is read-only during the run; writes happen only via the assets
// import surface.
func (s *Service) resolveImages(ctx context.Context, records []*domain.Record) int {
	resolved := 0
	for _, rec := range records {
		if strings.TrimSpace(rec.GetField(domain.FieldImageURL)) != "" {
			rec.SetField(domain.FieldImageSource, string(domain.ImageSourceExcel))
			continue
		}
		a, err := s.d.Resolver.Resolve(ctx, rec.GetField(domain.FieldItemID), rec.GetField(domain.FieldName))
		if err != nil {
			s.d.Log.Warn("image lookup failed", zap.Error(err))
			continue
		}
		if a == nil {
			rec.SetField(domain.FieldImageSource, string(domain.ImageSourceNone))
			continue
		}
		rec.SetField(domain.FieldImageURL, dataURI(a))
		rec.SetField(domain.FieldImageSource, string(domain.ImageSourceDatabase))
		resolved++
	}
	return resolved
}

func dataURI(a *domain.Asset) string {
	ct := a.ContentType
	if ct == "" {
		ct = "image/png"
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// estimateCalories batches calorie estimation for records missing one.
// Failures follow the same per-batch isolation as translation.
func (s *Service) estimateCalories(ctx context.Context, records []*domain.Record) (int, int) {
	type slot struct {
		rec *domain.Record
		req ports.NutritionRequest
	}
	var work []slot
	for i, rec := range records {
		name := strings.TrimSpace(rec.GetField(domain.FieldName))
		if name == "" || strings.TrimSpace(rec.GetField(domain.FieldCalories)) != "" {
			continue
		}
		work = append(work, slot{rec: rec, req: ports.NutritionRequest{
			ID:          reconcilerKey(i, rec),
			Name:        name,
			Description: rec.GetField(domain.FieldDescription),
		}})
	}
	if len(work) == 0 {
		return 0, 0
	}

	var (
		tasks     []jobs.Task
		mu        sync.Mutex
		estimated int
	)
	for start := 0; start < len(work); start += s.d.BatchSize {
		end := start + s.d.BatchSize
		if end > len(work) {
			end = len(work)
		}
		batch := work[start:end]
		tasks = append(tasks, func(ctx context.Context) error {
			byID := make(map[string]slot, len(batch))
			reqs := make([]ports.NutritionRequest, 0, len(batch))
			for _, w := range batch {
				byID[w.req.ID] = w
				reqs = append(reqs, w.req)
			}
			results, err := s.d.Nutrition.Estimate(ctx, reqs)
			if err != nil {
				return fmt.Errorf("nutrition batch of %d: %w", len(batch), err)
			}
			mu.Lock()
			for _, r := range results {
				w, ok := byID[r.ID]
				if !ok || strings.TrimSpace(r.Calories) == "" {
					continue
				}
				if w.rec.GetField(domain.FieldCalories) == "" {
					w.rec.SetField(domain.FieldCalories, r.Calories)
					estimated++
				}
			}
			mu.Unlock()
			return nil
		})
	}
	res := s.d.Pool.Run(ctx, tasks)
	return estimated, res.Failed
}

func reconcilerKey(i int, rec *domain.Record) string {
	if id := strings.TrimSpace(rec.GetField(domain.FieldItemID)); id != "" {
		return id
	}
	return fmt.Sprintf("row-%d", i)
}
