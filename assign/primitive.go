package assign

import (
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// minAvailable is the primitive shared by every strategy and by the
// Conflict Resolver: the smallest non-negative color not currently held
// by any colored neighbor of v.
//
// scratch is cleared, then one bit is marked per distinct color among v's
// colored neighbors; the result is the position of the first unmarked
// bit. scratch is expected to be a worker-owned bitscratch.Set, grown as
// needed — callers must tolerate neighbor colors that are concurrently
// being written by another goroutine, since this is a snapshot read, not
// a locked one.
func minAvailable(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set) int32 {
	scratch.Clear()
	for _, u := range g.Neighbors(v) {
		if c := state.Read(u); c >= 0 {
			scratch.Mark(c)
		}
	}
	return scratch.MinFree()
}

// MinAvailable exports the shared primitive for the Conflict Resolver
// (package resolve), which recomputes it against current neighbor colors
// during its repair phase — the exact same operation the Assignment
// Engine's strategies perform during publication.
func MinAvailable(g *graphstore.Graph, state *colorstate.State, v int32, scratch *bitscratch.Set) int32 {
	return minAvailable(g, state, v, scratch)
}
