package assign

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// deque is a per-worker double-ended queue of vertex ids. The owner pops
// from the head; thieves pop from the tail. A single mutex per deque is
// enough here — stealing is the rare path, not the common one, so this
// optimizes for owner-side simplicity over lock-free cleverness.
type deque struct {
	mu    sync.Mutex
	items []int32
}

func (d *deque) popHead() (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.items) == 0 {
		return 0, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

func (d *deque) popTail() (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.items)
	if n == 0 {
		return 0, false
	}
	v := d.items[n-1]
	d.items = d.items[:n-1]
	return v, true
}

// parallelForStealing implements the SchedulerKind = WorkStealing variant
// of ParallelFor's contract: items are split into threads contiguous
// slices up front (one deque per worker); each worker drains its own
// deque from the head, and once empty, steals from the tail of the first
// non-empty deque found scanning the other workers round-robin from the
// next one, until threads consecutive scans in a row find every deque
// empty (a cheap termination check that avoids a shared atomic
// remaining-count).
func parallelForStealing(threads int, items []int32, work func(item int32)) {
	if threads < 1 {
		threads = 1
	}
	deques := make([]*deque, threads)
	chunk := (len(items) + threads - 1) / threads
	for w := 0; w < threads; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo > len(items) {
			lo = len(items)
		}
		if hi > len(items) {
			hi = len(items)
		}
		owned := make([]int32, hi-lo)
		copy(owned, items[lo:hi])
		deques[w] = &deque{items: owned}
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < threads; w++ {
		w := w
		g.Go(func() error {
			me := deques[w]
			idleStreak := 0
			for idleStreak < threads {
				if v, ok := me.popHead(); ok {
					work(v)
					idleStreak = 0
					continue
				}
				stole := false
				for k := 1; k < threads; k++ {
					victim := deques[(w+k)%threads]
					if v, ok := victim.popTail(); ok {
						work(v)
						stole = true
						break
					}
				}
				if stole {
					idleStreak = 0
					continue
				}
				idleStreak++
			}
			return nil
		})
	}
	_ = g.Wait()
}
