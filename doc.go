// Package chromatix is a parallel graph-coloring engine.
//
// It colors an undirected graph with four interchangeable publication
// strategies — Sequential, AtomicCAS, STM, HTM — behind one pipeline:
//
//	graphstore  — immutable compressed-sparse-row graph
//	order       — degree-descending ProcessingOrder
//	colorstate  — atomic per-vertex color state
//	assign      — the Assignment Engine (pre-pass + parallel phase)
//	resolve     — the Conflict Resolver (detect/repair loop)
//	coloring    — the Color() facade tying the above together
//	loader      — edge-list file parsing
//	cmd/chromatix — CLI
//
// Every strategy produces a valid coloring — no two adjacent vertices
// share a color — regardless of thread count; they differ only in how
// contention during the parallel phase is resolved.
//
//	go get github.com/katalvlaran/chromatix
package chromatix
