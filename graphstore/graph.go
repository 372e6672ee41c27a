package graphstore

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"
)

// ErrInvalidVertex reports an edge endpoint outside [0, N).
type ErrInvalidVertex struct {
	V int32 // the offending endpoint
	N int32 // the vertex count the graph was built with
}

func (e *ErrInvalidVertex) Error() string {
	return fmt.Sprintf("graphstore: vertex %d out of range [0,%d)", e.V, e.N)
}

// Graph is an immutable undirected graph in compressed-sparse-row form.
//
// Once returned by Build, a Graph is never mutated; Degree and Neighbors
// may be called from any number of goroutines without synchronization.
type Graph struct {
	n         int32
	m         int32
	offsets   []int32 // len N+1
	neighbors []int32 // len 2*M
}

// BuildOption configures Build. There are currently no required options;
// WithLogger attaches optional structured logging of dedup/self-loop
// decisions, following the convention of never forcing a
// logging backend on a library caller.
type BuildOption func(*buildConfig)

type buildConfig struct {
	log logr.Logger
}

// WithLogger attaches a logr.Logger used to report dropped self-loops and
// deduplicated edges at V(1). Defaults to logr.Discard().
func WithLogger(l logr.Logger) BuildOption {
	return func(c *buildConfig) { c.log = l }
}

// N returns the vertex count.
func (g *Graph) N() int32 { return g.n }

// M returns the edge count (each undirected edge counted once).
func (g *Graph) M() int32 { return g.m }

// Degree returns deg(v), the number of distinct neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int32) int32 {
	return g.offsets[v+1] - g.offsets[v]
}

// Neighbors returns v's neighbor list as a slice into the graph's
// internal storage. Callers must not mutate the returned slice.
// Complexity: O(1) to obtain the slice; O(deg(v)) to iterate it.
func (g *Graph) Neighbors(v int32) []int32 {
	return g.neighbors[g.offsets[v]:g.offsets[v+1]]
}

// Build constructs an immutable Graph from a vertex count and an
// unordered list of (u,v) pairs.
//
// Build deduplicates edges, drops self-loops, and materializes both
// directions of every surviving edge. Any endpoint outside [0,n) fails
// the whole build with *ErrInvalidVertex; duplicates and self-loops are
// silently dropped (not errors).
//
// Complexity: O(E) time and space after validation, dominated by a single
// dedup pass per vertex and a prefix sum over offsets.
func Build(n int32, edges [][2]int32, opts ...BuildOption) (*Graph, error) {
	cfg := buildConfig{log: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Pass 0: validate endpoints and drop self-loops while deduplicating
	// per vertex. A transient map is used here only — once, during
	// construction — never as the graph's resident representation.
	adj := make([]map[int32]struct{}, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n {
			return nil, &ErrInvalidVertex{V: u, N: n}
		}
		if v < 0 || v >= n {
			return nil, &ErrInvalidVertex{V: v, N: n}
		}
		if u == v {
			cfg.log.V(1).Info("dropping self-loop", "vertex", u)
			continue
		}
		if adj[u] == nil {
			adj[u] = make(map[int32]struct{})
		}
		if adj[v] == nil {
			adj[v] = make(map[int32]struct{})
		}
		if _, dup := adj[u][v]; dup {
			cfg.log.V(1).Info("dropping duplicate edge", "u", u, "v", v)
			continue
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	// Pass 1: prefix-sum degrees into offsets.
	offsets := make([]int32, n+1)
	for v := int32(0); v < n; v++ {
		offsets[v+1] = offsets[v] + int32(len(adj[v]))
	}
	total := offsets[n]

	// Pass 2: fill neighbors in ascending-id order per vertex for
	// deterministic iteration (preferring
	// for deterministic, sorted output over map iteration order).
	neighbors := make([]int32, total)
	for v := int32(0); v < n; v++ {
		if len(adj[v]) == 0 {
			continue
		}
		bucket := neighbors[offsets[v]:offsets[v+1]]
		i := 0
		for u := range adj[v] {
			bucket[i] = u
			i++
		}
		sort.Slice(bucket, func(a, b int) bool { return bucket[a] < bucket[b] })
	}

	return &Graph{
		n:         n,
		m:         total / 2,
		offsets:   offsets,
		neighbors: neighbors,
	}, nil
}
