package resolve

import (
	"go.uber.org/atomic"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/chromatix/assign"
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/internal/bitscratch"
)

// Options configures a Resolve run.
type Options struct {
	Threads       int
	MaxIterations int
	Logger        logr.Logger
}

// NewOptions returns Options with the documented defaults:
// MaxIterations = 3, Threads inherited from the caller (0 means
// ParallelFor treats it as 1).
func NewOptions(threads int) Options {
	return Options{Threads: threads, MaxIterations: 3, Logger: logr.Discard()}
}

// Result reports the counters the top-level Stats struct surfaces for a
// Resolve run.
type Result struct {
	Iterations        int
	ConflictsRepaired int64
	FinalPassUsed     bool
}

// Resolve runs the detect/repair loop to completion, guaranteeing a valid
// coloring on return: either some iteration within MaxIterations found no
// conflicts, or the detect run after the last repair found none, or the
// final guaranteed-unique-color pass ran.
func Resolve(g *graphstore.Graph, state *colorstate.State, opts Options) Result {
	allVertices := make([]int32, g.N())
	for v := int32(0); v < g.N(); v++ {
		allVertices[v] = v
	}

	var res Result
	for iter := 0; iter < opts.MaxIterations; iter++ {
		state.ClearAllConflicts()
		hadConflicts := detect(g, state, allVertices, opts)
		res.Iterations = iter + 1
		if !hadConflicts {
			opts.Logger.V(1).Info("resolver converged", "iterations", res.Iterations)
			return res
		}
		res.ConflictsRepaired += repair(g, state, allVertices, opts)
	}

	// Iteration cap exhausted: detect once more and, for anything still
	// flagged, mint a guaranteed-fresh color. This is ResolverStall
	// handled internally — it is never surfaced to a caller.
	state.ClearAllConflicts()
	if detect(g, state, allVertices, opts) {
		res.FinalPassUsed = true
		res.ConflictsRepaired += finalUniquePass(state, allVertices)
		opts.Logger.V(0).Info("resolver iteration cap exhausted; applied guaranteed-unique final pass")
	}
	return res
}

// detect inspects every edge exactly once (from its lower-indexed
// endpoint) and flags the loser of each same-colored adjacent pair.
// Returns true if any conflict was found.
func detect(g *graphstore.Graph, state *colorstate.State, vertices []int32, opts Options) bool {
	var had atomic.Bool
	assign.ParallelFor(threadsOr1(opts.Threads), vertices, func(u int32) {
		cu := state.Read(u)
		if cu < 0 {
			return
		}
		for _, v := range g.Neighbors(u) {
			if v <= u {
				continue // each edge inspected once, from the lower endpoint
			}
			if state.Read(v) != cu {
				continue
			}
			loser := pickLoser(g, u, v)
			state.SetConflict(loser, true)
			had.Store(true)
		}
	})
	return had.Load()
}

// pickLoser applies the tie-break rule: the vertex with strictly
// lower degree loses; on equal degree, the higher vertex id loses.
func pickLoser(g *graphstore.Graph, u, v int32) int32 {
	du, dv := g.Degree(u), g.Degree(v)
	switch {
	case du < dv:
		return u
	case dv < du:
		return v
	default:
		if u > v {
			return u
		}
		return v
	}
}

// repair recomputes min_available for every flagged vertex and
// republishes, raising the ceiling first if needed. Returns the number
// of vertices repaired.
func repair(g *graphstore.Graph, state *colorstate.State, vertices []int32, opts Options) int64 {
	var repaired atomic.Int64
	assign.ParallelFor(threadsOr1(opts.Threads), vertices, func(v int32) {
		if !state.HasConflict(v) {
			return
		}
		scratch := bitscratch.Acquire()
		c := assign.MinAvailable(g, state, v, scratch)
		state.BumpCeilingTo(c)
		state.Assign(v, c)
		bitscratch.Release(scratch)
		repaired.Inc()
	})
	return repaired.Load()
}

// finalUniquePass runs single-threaded: every flagged vertex gets a
// brand-new color no other vertex currently holds, guaranteeing
// termination with a valid (if possibly color-wasteful) coloring.
func finalUniquePass(state *colorstate.State, vertices []int32) int64 {
	var n int64
	for _, v := range vertices {
		if !state.HasConflict(v) {
			continue
		}
		fresh := state.FetchAddCeiling()
		state.Assign(v, fresh)
		n++
	}
	return n
}

func threadsOr1(t int) int {
	if t < 1 {
		return 1
	}
	return t
}
