package assign

import (
	"time"

	"go.uber.org/atomic"

	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// htmCapability reports whether this build can attempt a hardware
// transactional region for the publish step. Go has no portable
// TSX/HTM intrinsic without per-architecture cgo and assembly, which is
// out of scope for a portable engine; this is always
// false today, but the strategy is structured so that a future capable
// build only needs to change beginHTMTransaction, not the retry/backoff/
// fallback shape around it.
const htmCapability = false

// beginHTMTransaction would start a hardware transactional region and
// attempt the publish inside it, returning true on commit. Without
// htmCapability there is nothing to attempt, so it always reports abort.
func beginHTMTransaction(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set) (committed bool) {
	if !htmCapability {
		return false
	}
	// Unreachable until htmCapability is true on some future build.
	c := minAvailable(g, state, v, scratch)
	ceilSnap := state.Ceiling()
	if c < ceilSnap || state.CompareAndSwapCeiling(ceilSnap, c+1) {
		state.Assign(v, c)
		return true
	}
	return false
}

const (
	htmBaseBackoff = 50 * time.Microsecond
	htmMaxBackoff  = 2 * time.Millisecond
)

// runHTM publishes every vertex in suffix under the bounded
// hardware-transaction strategy: vertices above
// opts.HighContentionDegree skip transactions entirely and go straight to
// the serialized fallback; every other vertex retries inside
// beginHTMTransaction with exponential back-off up to opts.RetryBudget
// times before also falling back.
func runHTM(g *graphstore.Graph, state *colorstate.State, suffix []int32, opts Options) (committed, aborted int64) {
	var commitCtr, abortCtr atomic.Int64
	runScheduled(opts, suffix, func(v int32) {
		scratch := bitscratch.Acquire()
		defer bitscratch.Release(scratch)

		if g.Degree(v) > opts.HighContentionDegree {
			fallbackAssign(g, state, v, scratch)
			return
		}

		backoff := htmBaseBackoff
		for attempt := 0; attempt < opts.RetryBudget; attempt++ {
			if beginHTMTransaction(g, state, v, scratch) {
				commitCtr.Inc()
				return
			}
			abortCtr.Inc()
			time.Sleep(backoff)
			if backoff < htmMaxBackoff {
				backoff *= 2
			}
		}
		fallbackAssign(g, state, v, scratch)
	})
	return commitCtr.Load(), abortCtr.Load()
}
