package assign

import (
	"go.uber.org/atomic"

	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// runSTM publishes every vertex in suffix under the optimistic
// software-transactional protocol. No general-purpose
// Go STM library is available in the ecosystem, so this is
// the hand-rolled equivalent: collect
// neighbor colors outside any lock, recompute and compare against the
// current state just before publishing, and treat a mismatch as an
// abort rather than a fatal error.
func runSTM(g *graphstore.Graph, state *colorstate.State, suffix []int32, opts Options) (committed, aborted int64) {
	var commitCtr, abortCtr atomic.Int64
	runScheduled(opts, suffix, func(v int32) {
		scratch := bitscratch.Acquire()
		defer bitscratch.Release(scratch)
		stmAssignOne(g, state, v, scratch, opts, &commitCtr, &abortCtr)
	})
	return commitCtr.Load(), abortCtr.Load()
}

func stmAssignOne(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set, opts Options, commitCtr, abortCtr *atomic.Int64) {
	for attempt := 0; attempt < opts.RetryBudget; attempt++ {
		// Collect phase: compute the candidate outside any critical
		// section. This is the read set of the "transaction".
		candidate := minAvailable(g, state, v, scratch)

		// Validate phase: recompute against the current state; if a
		// neighbor changed color since the collect phase, the candidate
		// may no longer be minimal and the transaction aborts.
		revalidated := minAvailable(g, state, v, scratch)
		if revalidated != candidate {
			abortCtr.Inc()
			continue
		}

		// Publish phase: raise the ceiling if needed, then store. A
		// lost CAS here means another goroutine's transaction committed
		// first and moved the ceiling — also an abort, not a fatal
		// error.
		ceilSnap := state.Ceiling()
		if candidate >= ceilSnap {
			if !state.CompareAndSwapCeiling(ceilSnap, candidate+1) {
				abortCtr.Inc()
				continue
			}
		}
		state.Assign(v, candidate)
		commitCtr.Inc()
		return
	}

	// Retry budget exhausted: fall back to a freshly allocated unique
	// color rather than the serialized mutex path; this
	// strategy takes the unique-color route since it needs no lock at
	// all and keeps the optimistic strategy's hot path lock-free end to
	// end, reserving the shared fallback mutex for AtomicCAS and HTM.
	fresh := state.FetchAddCeiling()
	state.Assign(v, fresh)
	abortCtr.Inc()
}
