// Package assign implements the Assignment Engine: the concurrent phase
// that consumes a ProcessingOrder and populates a colorstate.State.
//
// The three concurrent strategies (AtomicCAS, STM, HTM) share the same
// skeleton: a single-threaded pre-pass over the highest-degree prefix of
// the ProcessingOrder, followed by a parallel phase over the remaining
// suffix dispatched by runScheduled (ParallelFor or the work-stealing
// scheduler). Sequential walks the whole order on one goroutine instead.
// All four share one primitive, minAvailable, and differ only in how a
// computed color is published — see assign.go for Kind and Run, and
// sequential.go/atomiccas.go/stm.go/htm.go for the four implementations.
package assign
