package coloring

import (
	"time"

	"github.com/katalvlaran/chromatix/assign"
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
	"github.com/katalvlaran/chromatix/order"
	"github.com/katalvlaran/chromatix/resolve"
)

// Stats reports the run-level counters a caller needs to evaluate a
// strategy's behavior on a particular graph: how much of the pre-pass ran
// sequentially, how contested the parallel phase was, and how much work
// the Conflict Resolver had to do to restore validity.
type Stats struct {
	TimeTotal             time.Duration
	SequentialPrefixCount int
	TransactionsCommitted int64
	TransactionsAborted   int64
	ResolverIterations    int
	FinalCeiling          int32
	ConflictsRepaired     int64
	BipartiteDetected     bool
}

// Color runs the full pipeline — Ordering Oracle, Color State, Assignment
// Engine, Conflict Resolver — against an already-built g and returns a
// valid coloring (colors[v] for every v in [0,N)) plus run statistics.
//
// If opts.DetectBipartite is set, a BFS two-coloring pre-pass runs first;
// on success it returns immediately with Stats.BipartiteDetected = true
// and every other counter left zero, since no Assignment Engine or
// Conflict Resolver run occurred. On failure (an odd cycle found, or any
// component disconnected with one found) the partial two-coloring is
// discarded and the normal pipeline runs unmodified.
func Color(g *graphstore.Graph, strategy Strategy, opts ...Option) ([]int32, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	if strategy < Sequential || strategy > HTM {
		return nil, Stats{}, ErrUnknownStrategy
	}

	cfg := NewOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	if cfg.DetectBipartite {
		if colors, ok := tryBipartite(g); ok {
			return colors, Stats{
				TimeTotal:         time.Since(start),
				BipartiteDetected: true,
			}, nil
		}
		cfg.Logger.V(1).Info("bipartite fast path failed; falling through to normal pipeline")
	}

	procOrder := order.Compute(g)
	state := colorstate.New(g.N())

	assignRes := assign.Run(g, procOrder, state, strategy.toAssignKind(), cfg.toAssignOptions())

	resolverOpts := resolve.NewOptions(cfg.Threads)
	resolverOpts.MaxIterations = cfg.MaxResolverIterations
	resolverOpts.Logger = cfg.Logger
	resolveRes := resolve.Resolve(g, state, resolverOpts)

	stats := Stats{
		TimeTotal:             time.Since(start),
		SequentialPrefixCount: assignRes.SequentialPrefixCount,
		TransactionsCommitted: assignRes.TransactionsCommitted,
		TransactionsAborted:   assignRes.TransactionsAborted,
		ResolverIterations:    resolveRes.Iterations,
		FinalCeiling:          state.Ceiling(),
		ConflictsRepaired:     resolveRes.ConflictsRepaired,
	}
	return state.Snapshot(), stats, nil
}
