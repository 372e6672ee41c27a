// Package resolve implements the Conflict Resolver: the iterative
// detector/repairer that runs after the Assignment Engine to restore the
// adjacency invariant two threads can violate by each coloring one half
// of an edge whose endpoints were both uncolored at read time.
//
// Resolve runs clear-flags → detect → repair for up to
// Options.MaxIterations rounds. Detect inspects each edge exactly once
// (from the lower-indexed endpoint) and flags the "loser" of any
// same-colored adjacent pair — lower degree loses, higher id breaks a
// degree tie. Repair recomputes the shared min_available primitive
// (assign.MinAvailable) for every flagged vertex and republishes. If conflicts remain after the
// iteration cap, a final single-threaded pass assigns every still-
// conflicting vertex a freshly minted, guaranteed-unique color via
// ceiling.fetch_add(1), which terminates the run with a valid coloring
// even in the worst case.
package resolve
