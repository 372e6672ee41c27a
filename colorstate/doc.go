// Package colorstate provides the per-run, atomic coloring state shared
// by the Assignment Engine and the Conflict Resolver: a color slot per
// vertex (sentinel -1 for "uncolored"), a monotonically non-decreasing
// ceiling one past the largest color any vertex currently carries, and a
// conflict flag per vertex.
//
// A State is created fresh for each coloring run and owned exclusively by
// that run for its lifetime; Graph itself stays immutable and shared.
// Every operation here is a per-cell atomic read or write — there is no
// per-cell lock, and the ceiling is moved only by compare-and-swap
// (BumpCeilingTo's loop, CompareAndSwapCeiling's single attempt) or by
// an atomic add (FetchAddCeiling).
//
// Publish ordering contract: a writer must raise the ceiling (if needed)
// before storing a color, and Assign uses release semantics so that any
// reader who observes Read(v) == c can, on a subsequent call to Ceiling,
// rely on seeing a value strictly greater than c.
package colorstate
