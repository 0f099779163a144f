package reconciler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
	"github.com/SHADYEHABOCOR/gLabs/internal/normalize"
	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
	"github.com/SHADYEHABOCOR/gLabs/internal/usecase/jobs"
)

const DefaultBatchSize = 25

// Service reconciles bilingual fields across a record set: it decides per
// field whether machine translation is needed, the target language is already
// present, or the value can be copied verbatim, and drives the batched
// translation calls.
type Service struct {
	oracle    ports.Oracle
	pool      *jobs.Pool
	batchSize int
	log       *zap.Logger
}

func New(oracle ports.Oracle, pool *jobs.Pool, batchSize int, log *zap.Logger) *Service {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Service{oracle: oracle, pool: pool, batchSize: batchSize, log: log}
}

// Stats reports what one reconciliation direction did.
type Stats struct {
	AlreadyArabic int
	Submitted     int
	Translated    int
	FailedBatches int
	RateLimited   bool
}

// pending is one record awaiting translation of one or more fields.
type pending struct {
	key    string
	rec    *domain.Record
	fields map[string]string
}

// recordKey identifies a record within one run for batch routing. Each key
// lands in exactly one batch, so in-flight batches write disjoint records.
func recordKey(i int, rec *domain.Record) string {
	if id := strings.TrimSpace(rec.GetField(domain.FieldItemID)); id != "" {
		return id
	}
	if id := strings.TrimSpace(rec.GetField(domain.FieldModifierID)); id != "" {
		return "mod-" + id
	}
	return fmt.Sprintf("row-%d", i)
}

// EnsureArabic populates the Arabic companion of every listed field: values
// already in Arabic script are copied verbatim with no oracle call, non-Arabic
// values are batched to the oracle, empty values are never translated.
func (s *Service) EnsureArabic(ctx context.Context, records []*domain.Record, fields []domain.Field, onProgress func(done, total int)) Stats {
	var stats Stats
	var work []pending

	for i, rec := range records {
		var need map[string]string
		for _, f := range fields {
			src := rec.GetField(f)
			if strings.TrimSpace(src) == "" || rec.GetField(f.Arabic()) != "" {
				continue
			}
			if normalize.ContainsArabic(src) {
				rec.SetField(f.Arabic(), src)
				stats.AlreadyArabic++
				continue
			}
			if need == nil {
				need = map[string]string{}
			}
			need[string(f)] = src
		}
		if need != nil {
			work = append(work, pending{key: recordKey(i, rec), rec: rec, fields: need})
		}
	}
	stats.Submitted = len(work)
	s.translate(ctx, ports.ToArabic, work, &stats, onProgress, func(p pending, f string, out string) {
		field := domain.Field(f)
		// The companion may have been filled by an overlapping write; never
		// clobber it, and never store an empty oracle result.
		if p.rec.GetField(field.Arabic()) != "" {
			return
		}
		if strings.TrimSpace(p.rec.GetField(field)) == "" || strings.TrimSpace(out) == "" {
			return
		}
		p.rec.SetField(field.Arabic(), out)
		stats.Translated++
	})
	return stats
}

// EnsureEnglish makes the base field of every listed field English. A record
// field is selected when Arabic script appears in either the base value or
// its companion; Arabic living in the base field is moved to the companion
// before the base is overwritten with the oracle's English result.
func (s *Service) EnsureEnglish(ctx context.Context, records []*domain.Record, fields []domain.Field, onProgress func(done, total int)) Stats {
	var stats Stats
	var work []pending

	for i, rec := range records {
		var need map[string]string
		for _, f := range fields {
			src := rec.GetField(f)
			companion := rec.GetField(f.Arabic())
			srcArabic := normalize.ContainsArabic(src)
			if !srcArabic && !normalize.ContainsArabic(companion) {
				continue
			}
			if srcArabic && companion == "" {
				rec.SetField(f.Arabic(), src)
			}
			arabic := src
			if !srcArabic {
				arabic = companion
			}
			if need == nil {
				need = map[string]string{}
			}
			need[string(f)] = arabic
		}
		if need != nil {
			work = append(work, pending{key: recordKey(i, rec), rec: rec, fields: need})
		}
	}
	stats.Submitted = len(work)
	s.translate(ctx, ports.ToEnglish, work, &stats, onProgress, func(p pending, f string, out string) {
		if strings.TrimSpace(out) == "" {
			return
		}
		p.rec.Set(f, out)
		stats.Translated++
	})
	return stats
}

// translate groups pending work into fixed-size batches and runs them on the
// bounded pool. Batch failures are logged and skipped; the affected records
// keep their untranslated values.
func (s *Service) translate(ctx context.Context, dir ports.Direction, work []pending, stats *Stats, onProgress func(done, total int), apply func(pending, string, string)) {
	if len(work) == 0 {
		return
	}
	progress := jobs.NewProgress(len(work), onProgress)
	// Batches write disjoint records, but the stats counters are shared.
	var mu sync.Mutex

	var tasks []jobs.Task
	for start := 0; start < len(work); start += s.batchSize {
		end := start + s.batchSize
		if end > len(work) {
			end = len(work)
		}
		batch := work[start:end]
		tasks = append(tasks, func(ctx context.Context) error {
			byKey := make(map[string]pending, len(batch))
			reqs := make([]ports.TranslationRequest, 0, len(batch))
			for _, p := range batch {
				byKey[p.key] = p
				reqs = append(reqs, ports.TranslationRequest{ID: p.key, Fields: p.fields})
			}
			results, err := s.oracle.Translate(ctx, dir, reqs)
			if err != nil {
				progress.Add(len(batch))
				return fmt.Errorf("translate batch of %d: %w", len(batch), err)
			}
			mu.Lock()
			for _, r := range results {
				p, ok := byKey[r.ID]
				if !ok {
					continue
				}
				for f, out := range r.Fields {
					if _, submitted := p.fields[f]; !submitted {
						continue
					}
					apply(p, f, out)
				}
			}
			mu.Unlock()
			progress.Add(len(batch))
			return nil
		})
	}

	res := s.pool.Run(ctx, tasks)
	stats.FailedBatches += res.Failed
	stats.RateLimited = stats.RateLimited || res.RateLimited
	s.log.Info("reconciliation pass finished",
		zap.String("direction", string(dir)),
		zap.Int("records", len(work)),
		zap.Int("batches", len(tasks)),
		zap.Int("failed", res.Failed),
	)
}
