package coloring

import "github.com/katalvlaran/chromatix/graphstore"

// tryBipartite attempts a two-coloring by breadth-first search from every
// undiscovered vertex, alternating colors 0/1 across each traversal edge.
// It reports ok=false the instant an edge would connect two same-colored
// vertices (an odd cycle), at which point colors is abandoned by the
// caller rather than patched up — bipartite-or-nothing, since this path
// never substitutes for the guaranteed validity the full pipeline
// provides.
//
// This is a CSR-native BFS written against graphstore.Graph directly
// rather than reusing a pointer-and-map graph.BFS, since that
// traversal is keyed by string vertex IDs and returns callback-driven
// results shaped for a different graph representation entirely.
func tryBipartite(g *graphstore.Graph) ([]int32, bool) {
	n := g.N()
	const unvisited = int32(-1)
	colors := make([]int32, n)
	for v := range colors {
		colors[v] = unvisited
	}

	queue := make([]int32, 0, n)
	for start := int32(0); start < n; start++ {
		if colors[start] != unvisited {
			continue
		}
		colors[start] = 0
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range g.Neighbors(u) {
				switch colors[v] {
				case unvisited:
					colors[v] = 1 - colors[u]
					queue = append(queue, v)
				default:
					if colors[v] == colors[u] {
						return nil, false
					}
				}
			}
		}
	}
	return colors, true
}
