package assign

import (
	"github.com/katalvlaran/chromatix/colorstate"
	"github.com/katalvlaran/chromatix/graphstore"
)

// Kind selects which of the four publication strategies the parallel
// phase uses. Sequential and AtomicCAS are mandatory on every platform.
// HTM is capability-gated (see htm.go) but always safe to select — on a
// platform without the capability every transaction attempt aborts, and
// after its back-off retries the vertex goes to the same serialized
// fallback AtomicCAS uses. STM is a hand-rolled optimistic protocol
// (see stm.go) that needs no platform capability.
type Kind int

const (
	Sequential Kind = iota
	AtomicCAS
	STM
	HTM
)

// Result reports the counters the top-level Stats struct surfaces for an
// Assignment Engine run.
type Result struct {
	SequentialPrefixCount int
	TransactionsCommitted int64
	TransactionsAborted   int64
}

// Run executes the Assignment Engine: pre-pass, then the parallel phase
// under the selected Kind. g, procOrder and state must already be
// populated per the pipeline order: Graph Store → Ordering Oracle →
// Color State seeded → Assignment Engine.
func Run(g *graphstore.Graph, procOrder []int32, state *colorstate.State, kind Kind, opts Options) Result {
	if kind == Sequential {
		return runSequential(g, procOrder, state)
	}

	prefixLen := prePass(g, procOrder, state, opts)
	opts.Logger.V(1).Info("pre-pass complete", "prefix", prefixLen, "ceiling", state.Ceiling())
	suffix := procOrder[prefixLen:]

	var res Result
	res.SequentialPrefixCount = prefixLen

	switch kind {
	case AtomicCAS:
		runAtomicCAS(g, state, suffix, opts)
	case STM:
		committed, aborted := runSTM(g, state, suffix, opts)
		res.TransactionsCommitted, res.TransactionsAborted = committed, aborted
	case HTM:
		committed, aborted := runHTM(g, state, suffix, opts)
		res.TransactionsCommitted, res.TransactionsAborted = committed, aborted
	default:
		panic("assign: unknown strategy kind")
	}

	return res
}
