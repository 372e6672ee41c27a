package order

import "sort"

// directSortThreshold is the vertex count at or below which Compute uses
// a plain stable sort instead of the degree-bucket pass. Chosen generously
// above typical cache-line/bucket-allocation overhead crossover points;
// both paths are required to agree exactly, so the threshold only trades
// constant-factor performance, never correctness.
const directSortThreshold = 1024

// degreeGraph is the minimal surface Compute needs from a graph. graphstore.Graph
// satisfies it; it is expressed as an interface here so order has no
// import-time dependency on graphstore's internals.
type degreeGraph interface {
	N() int32
	Degree(v int32) int32
}

// Compute returns the ProcessingOrder for g: vertex ids sorted by
// descending degree, ties broken by ascending id.
//
// Complexity: O(N log N) at or below directSortThreshold via
// sort.SliceStable; O(N + maxDegree) above it via a degree-bucket pass. Both
// algorithms produce byte-identical output for the same graph.
func Compute(g degreeGraph) []int32 {
	n := g.N()
	if n <= directSortThreshold {
		return directSort(g)
	}
	return bucketSort(g)
}

func directSort(g degreeGraph) []int32 {
	n := g.N()
	perm := make([]int32, n)
	for v := int32(0); v < n; v++ {
		perm[v] = v
	}
	sort.SliceStable(perm, func(i, j int) bool {
		di, dj := g.Degree(perm[i]), g.Degree(perm[j])
		if di != dj {
			return di > dj
		}
		return perm[i] < perm[j]
	})
	return perm
}

// bucketSort bins vertices by degree into one bucket per distinct degree
// value, then empties buckets from the highest degree down, each walked
// in ascending vertex-id order. This is linear in N plus the maximum
// degree, since no per-element comparison is ever made.
func bucketSort(g degreeGraph) []int32 {
	n := g.N()
	maxDeg := int32(0)
	degrees := make([]int32, n)
	for v := int32(0); v < n; v++ {
		d := g.Degree(v)
		degrees[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	// counts[d] is the number of vertices with degree d; the offsets
	// below turn it into bucket start positions in descending-degree
	// order.
	counts := make([]int32, maxDeg+1)
	for v := int32(0); v < n; v++ {
		counts[degrees[v]]++
	}

	// offsets[d] = index in perm where degree-d vertices start, laid out
	// from the highest degree bucket to the lowest.
	offsets := make([]int32, maxDeg+1)
	running := int32(0)
	for d := maxDeg; d >= 0; d-- {
		offsets[d] = running
		running += counts[d]
	}

	perm := make([]int32, n)
	cursor := make([]int32, maxDeg+1)
	copy(cursor, offsets)
	for v := int32(0); v < n; v++ {
		d := degrees[v]
		perm[cursor[d]] = v
		cursor[d]++
	}
	return perm
}
