package assign

import (
	"context"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelFor runs work(item) once for every item in items, using up to
// threads goroutines. It is exported for reuse by the Conflict Resolver's
// detect and repair phases, which need exactly the same "many independent
// per-vertex jobs, no ordering guarantee" execution shape as the
// Assignment Engine's parallel phase.
//
// A weighted semaphore sized to threads gates entry so that a future
// caller can shrink the effective parallelism for a dense graph (per
// a future caller can shrink the effective parallelism for a dense graph
// by acquiring more than one weight per goroutine, without
// restructuring the goroutine pool itself. work must not panic; a panic
// propagates through errgroup and aborts the remaining work.
func ParallelFor(threads int, items []int32, work func(item int32)) {
	if len(items) == 0 {
		return
	}
	if threads < 1 {
		threads = 1
	}
	switch {
	case threads == 1 || len(items) == 1:
		for _, it := range items {
			work(it)
		}
		return
	default:
		parallelForDynamic(threads, items, work)
	}
}

// runScheduled dispatches to the scheduler selected by opts.Scheduler:
// Dynamic (ParallelFor's default cursor-claim strategy) or WorkStealing
// (per-worker deques with end-opposite stealing, see steal.go).
func runScheduled(opts Options, items []int32, work func(item int32)) {
	if len(items) == 0 {
		return
	}
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}
	if opts.Scheduler == WorkStealing && threads > 1 && len(items) > 1 {
		parallelForStealing(threads, items, work)
		return
	}
	ParallelFor(threads, items, work)
}

// parallelForDynamic partitions items across goroutines via a shared
// atomic cursor: every goroutine repeatedly claims the next unclaimed
// index. This is the Dynamic scheduler (assign.Dynamic); the
// WorkStealing scheduler is implemented separately in steal.go.
func parallelForDynamic(threads int, items []int32, work func(item int32)) {
	sem := semaphore.NewWeighted(int64(threads))
	ctx := context.Background()
	var cursor atomic.Int64
	n := int64(len(items))

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			continue
		}
		g.Go(func() error {
			defer sem.Release(1)
			for {
				i := cursor.Add(1) - 1
				if i >= n {
					return nil
				}
				work(items[i])
			}
		})
	}
	_ = g.Wait()
}
