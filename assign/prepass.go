package assign

import (
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// prePass colors, single-threaded, the prefix of procOrder whose degree
// exceeds opts.degreeThreshold(N), capped at maxPrefixFraction*N. Because
// procOrder is already sorted by descending degree, the qualifying
// vertices are exactly its leading run and no scan past the first
// non-qualifying vertex is needed.
//
// The pre-pass never races with anything — it runs before the parallel
// phase starts — so it uses minAvailable directly with no CAS or
// transaction wrapper, establishing a non-trivial ceiling before any
// concurrent work begins.
func prePass(g *graphstore.Graph, procOrder []int32, state *colorstate.State, opts Options) (prefixLen int) {
	threshold := opts.degreeThreshold(g.N())
	maxLen := int(maxPrefixFraction * float64(g.N()))

	scratch := bitscratch.Acquire()
	defer bitscratch.Release(scratch)

	for _, v := range procOrder {
		if prefixLen >= maxLen {
			break
		}
		if g.Degree(v) <= threshold {
			break
		}
		c := minAvailable(g, state, v, scratch)
		state.BumpCeilingTo(c)
		state.Assign(v, c)
		prefixLen++
	}
	return prefixLen
}
