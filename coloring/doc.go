// Package coloring is the top-level facade: Color wires the Graph Store,
// Ordering Oracle, Color State, Assignment Engine and Conflict Resolver
// into one call that returns a valid coloring plus run statistics.
//
// Callers who only need "color this graph" never touch the lower
// packages directly; callers who need to reuse intermediate state
// (batched runs sharing one graph, say) can still import graphstore,
// order, colorstate, assign and resolve individually.
package coloring
