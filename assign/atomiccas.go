package assign

import (
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// runAtomicCAS publishes every vertex in suffix under the lock-free
// lock-free strategy: read a ceiling snapshot, compute c; if c
// is already below the snapshot, store directly; otherwise CAS the
// ceiling from the snapshot to c+1 and store on success. A lost CAS means
// some other goroutine moved the ceiling first, so the snapshot is stale
// and c must be recomputed from scratch — this is the retry loop, bounded
// by opts.RetryBudget, after which the vertex falls through to the
// serialized fallback.
func runAtomicCAS(g *graphstore.Graph, state *colorstate.State, suffix []int32, opts Options) {
	runScheduled(opts, suffix, func(v int32) {
		scratch := bitscratch.Acquire()
		defer bitscratch.Release(scratch)
		casAssignOne(g, state, v, scratch, opts)
	})
}

func casAssignOne(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set, opts Options) {
	for attempt := 0; attempt < opts.RetryBudget; attempt++ {
		ceilSnap := state.Ceiling()
		c := minAvailable(g, state, v, scratch)
		if c < ceilSnap {
			state.Assign(v, c)
			return
		}
		if !state.CompareAndSwapCeiling(ceilSnap, c+1) {
			// Lost the race: someone else moved the ceiling between our
			// snapshot and this CAS. Reload and recompute on the next
			// iteration rather than trusting a stale c.
			continue
		}
		state.Assign(v, c)
		return
	}
	fallbackAssign(g, state, v, scratch)
}
