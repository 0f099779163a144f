package jobs

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// Task is one batch of work. A returned error is logged and the batch's
// records stay unenriched; ports.ErrRateLimited additionally stops unstarted
// tasks from launching.
type Task func(ctx context.Context) error

// Pool runs tasks with at most N in flight, the next starting as soon as a
// slot frees.
type Pool struct {
	workers int
	log     *zap.Logger
}

func NewPool(workers int, log *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers, log: log}
}

// RunResult summarizes one pool run.
type RunResult struct {
	Completed   int
	Failed      int
	RateLimited bool
}

// Run executes tasks on the bounded pool. Failures are isolated per task;
// the run itself never aborts except on context cancellation upstream.
func (p *Pool) Run(ctx context.Context, tasks []Task) RunResult {
	var (
		mu   sync.Mutex
		res  RunResult
		halt bool
		wg   sync.WaitGroup
	)
	queue := make(chan Task)

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				mu.Lock()
				stopped := halt
				mu.Unlock()
				if stopped {
					continue
				}
				err := task(ctx)
				mu.Lock()
				switch {
				case err == nil:
					res.Completed++
				case errors.Is(err, ports.ErrRateLimited):
					res.Failed++
					res.RateLimited = true
					halt = true
					mu.Unlock()
					p.log.Warn("rate limited, no further batches will start")
					continue
				default:
					res.Failed++
					mu.Unlock()
					p.log.Warn("batch failed", zap.Error(err))
					continue
				}
				mu.Unlock()
			}
		}()
	}

	for _, t := range tasks {
		queue <- t
	}
	close(queue)
	wg.Wait()
	return res
}

// Progress aggregates completion events from concurrently resolving batches
// into a monotonically non-decreasing done count, regardless of arrival
// order.
type Progress struct {
	mu      sync.Mutex
	done    int
	total   int
	onEvent func(done, total int)
}

func NewProgress(total int, onEvent func(done, total int)) *Progress {
	return &Progress{total: total, onEvent: onEvent}
}

// Add reports n more completed units. The published count only ever grows.
func (p *Progress) Add(n int) {
	p.mu.Lock()
	next := p.done + n
	if next > p.total {
		next = p.total
	}
	if next < p.done {
		next = p.done
	}
	p.done = next
	done, total, fn := p.done, p.total, p.onEvent
	p.mu.Unlock()
	if fn != nil {
		fn(done, total)
	}
}

func (p *Progress) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}
