package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

func TestPoolRunsAllTasks(t *testing.T) {
	var n atomic.Int32
	var tasks []Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, func(context.Context) error {
			n.Add(1)
			return nil
		})
	}
	res := NewPool(3, zap.NewNop()).Run(context.Background(), tasks)
	if res.Completed != 10 || res.Failed != 0 {
		t.Fatalf("result = %+v", res)
	}
	if n.Load() != 10 {
		t.Errorf("ran %d tasks", n.Load())
	}
}

func TestPoolIsolatesFailures(t *testing.T) {
	tasks := []Task{
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("boom") },
		func(context.Context) error { return nil },
	}
	res := NewPool(1, zap.NewNop()).Run(context.Background(), tasks)
	if res.Completed != 2 || res.Failed != 1 || res.RateLimited {
		t.Fatalf("result = %+v", res)
	}
}

func TestPoolHaltsOnRateLimit(t *testing.T) {
	var after atomic.Int32
	tasks := []Task{
		func(context.Context) error { return nil },
		func(context.Context) error { return ports.ErrRateLimited },
		func(context.Context) error { after.Add(1); return nil },
		func(context.Context) error { after.Add(1); return nil },
	}
	// One worker makes the order deterministic.
	res := NewPool(1, zap.NewNop()).Run(context.Background(), tasks)
	if !res.RateLimited {
		t.Fatal("RateLimited not set")
	}
	if res.Completed != 1 {
		t.Errorf("Completed = %d, want 1", res.Completed)
	}
	if after.Load() != 0 {
		t.Errorf("%d tasks started after rate-limit signal", after.Load())
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const workers = 3
	var cur, max atomic.Int32
	var mu sync.Mutex
	var tasks []Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, func(context.Context) error {
			c := cur.Add(1)
			mu.Lock()
			if c > max.Load() {
				max.Store(c)
			}
			mu.Unlock()
			cur.Add(-1)
			return nil
		})
	}
	NewPool(workers, zap.NewNop()).Run(context.Background(), tasks)
	if max.Load() > workers {
		t.Errorf("observed %d concurrent tasks, bound is %d", max.Load(), workers)
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	var published []int
	p := NewProgress(10, func(done, total int) { published = append(published, done) })
	p.Add(3)
	p.Add(4)
	p.Add(0)
	p.Add(100) // clamps to total
	prev := -1
	for _, d := range published {
		if d < prev {
			t.Fatalf("progress regressed: %v", published)
		}
		prev = d
	}
	if p.Done() != 10 {
		t.Errorf("Done = %d", p.Done())
	}
}
