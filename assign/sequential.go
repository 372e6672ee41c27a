package assign

import (
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// runSequential walks the entire ProcessingOrder on the calling goroutine
// with no transaction and no retry: min_available, raise ceiling if
// needed, publish. It is the mandatory baseline strategy and the
// reference the "Determinism under T=1" and "Sequential color upper
// bound ≤ Δ+1" properties are checked against.
//
// It does not split into a separate pre-pass and parallel phase the way
// the concurrent strategies do — a single-threaded walk of the full
// order already produces, vertex for vertex, exactly what the pre-pass
// would produce on its prefix, so SequentialPrefixCount is reported for
// symmetry with the other strategies without changing the algorithm.
func runSequential(g *graphstore.Graph, procOrder []int32, state *colorstate.State) Result {
	scratch := bitscratch.Acquire()
	defer bitscratch.Release(scratch)

	threshold := NewOptions().degreeThreshold(g.N())
	prefixLen := 0
	countingPrefix := true

	for _, v := range procOrder {
		if countingPrefix {
			if g.Degree(v) > threshold {
				prefixLen++
			} else {
				countingPrefix = false
			}
		}
		c := minAvailable(g, state, v, scratch)
		state.BumpCeilingTo(c)
		state.Assign(v, c)
	}

	return Result{SequentialPrefixCount: prefixLen}
}
