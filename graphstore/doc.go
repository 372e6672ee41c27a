// Package graphstore provides an immutable, compressed-sparse-row (CSR)
// representation of an undirected graph.
//
// A Graph is built once from an unordered edge list via Build and never
// mutated afterward: Build deduplicates edges, drops self-loops, and
// materializes both directions of every edge so that Neighbors(v) is a
// contiguous, cache-friendly slice for every v. There is no per-cell lock
// and no lock at all after construction — Graph is safe for concurrent
// reads by any number of goroutines because nothing can write to it again.
//
// Layout:
//
//	offsets[0..N]   monotonically non-decreasing, offsets[N] == 2*M
//	neighbors[0..2M] neighbors[offsets[v]:offsets[v+1]] are v's neighbors
//
// This is the re-architected form of the hash-map-of-adjacency-lists
// representation a naive implementation reaches for first: two dense
// integer slices instead of a map keyed by vertex id, giving O(1) degree
// lookup and O(deg(v)) neighbor iteration with none of a map's pointer
// chasing.
package graphstore
