package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatix/graphstore"
)

func mustGraph(t *testing.T, n int32, edges [][2]int32) *graphstore.Graph {
	t.Helper()
	g, err := graphstore.Build(n, edges)
	require.NoError(t, err)
	return g
}

func requireValid(t *testing.T, g *graphstore.Graph, colors []int32) {
	t.Helper()
	require.Len(t, colors, int(g.N()))
	for v := int32(0); v < g.N(); v++ {
		require.GreaterOrEqual(t, colors[v], int32(0))
		for _, u := range g.Neighbors(v) {
			require.NotEqual(t, colors[v], colors[u], "vertices %d,%d share color", v, u)
		}
	}
}

func distinctColors(colors []int32) int {
	seen := map[int32]struct{}{}
	for _, c := range colors {
		seen[c] = struct{}{}
	}
	return len(seen)
}

var allStrategies = []Strategy{Sequential, AtomicCAS, STM, HTM}
var allThreadCounts = []int{1, 2, 8}

// scenario builds one of several concrete end-to-end graphs.
type scenario struct {
	name  string
	n     int32
	edges [][2]int32
}

func scenarios() []scenario {
	grid := func() [][2]int32 {
		var e [][2]int32
		idx := func(r, c int32) int32 { return r*5 + c }
		for r := int32(0); r < 5; r++ {
			for c := int32(0); c < 5; c++ {
				if c+1 < 5 {
					e = append(e, [2]int32{idx(r, c), idx(r, c+1)})
				}
				if r+1 < 5 {
					e = append(e, [2]int32{idx(r, c), idx(r+1, c)})
				}
			}
		}
		return e
	}
	k := func(n int32) [][2]int32 {
		var e [][2]int32
		for i := int32(0); i < n; i++ {
			for j := i + 1; j < n; j++ {
				e = append(e, [2]int32{i, j})
			}
		}
		return e
	}
	path := func(n int32) [][2]int32 {
		var e [][2]int32
		for i := int32(0); i < n-1; i++ {
			e = append(e, [2]int32{i, i + 1})
		}
		return e
	}
	twoStars := [][2]int32{
		{0, 1},
		{0, 2}, {0, 3}, {0, 4},
		{1, 5}, {1, 6}, {1, 7},
	}

	return []scenario{
		{"empty-N5", 5, nil},
		{"single-edge", 2, [][2]int32{{0, 1}}},
		{"triangle-K3", 3, k(3)},
		{"complete-K5", 5, k(5)},
		{"path-P6", 6, path(6)},
		{"grid-5x5", 25, grid()},
		{"adversarial-two-stars", 8, twoStars},
	}
}

func TestColorAllScenariosAcrossStrategiesAndThreads(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			g := mustGraph(t, sc.n, sc.edges)
			for _, strategy := range allStrategies {
				for _, threads := range allThreadCounts {
					colors, stats, err := Color(g, strategy, WithThreads(threads))
					require.NoError(t, err)
					requireValid(t, g, colors)
					require.LessOrEqual(t, stats.ResolverIterations, 4) // MaxResolverIterations+1
				}
			}
		})
	}
}

func TestColorEmptyGraphSequentialUsesOneColor(t *testing.T) {
	g := mustGraph(t, 5, nil)
	colors, stats, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 0, 0, 0}, colors)
	require.Equal(t, int32(1), stats.FinalCeiling)
}

func TestColorTriangleUsesExactlyThreeColors(t *testing.T) {
	g := mustGraph(t, 3, [][2]int32{{0, 1}, {0, 2}, {1, 2}})
	colors, _, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	require.Equal(t, 3, distinctColors(colors))
}

func TestColorK5UsesExactlyFiveColors(t *testing.T) {
	var edges [][2]int32
	for i := int32(0); i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int32{i, j})
		}
	}
	g := mustGraph(t, 5, edges)
	for _, strategy := range allStrategies {
		colors, _, err := Color(g, strategy, WithThreads(4))
		require.NoError(t, err)
		requireValid(t, g, colors)
		require.Equal(t, 5, distinctColors(colors))
	}
}

func TestColorPathSequentialUsesTwoColors(t *testing.T) {
	g := mustGraph(t, 6, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	colors, _, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	require.Equal(t, 2, distinctColors(colors))
}

func TestColorGridSequentialUsesTwoColors(t *testing.T) {
	var edges [][2]int32
	idx := func(r, c int32) int32 { return r*5 + c }
	for r := int32(0); r < 5; r++ {
		for c := int32(0); c < 5; c++ {
			if c+1 < 5 {
				edges = append(edges, [2]int32{idx(r, c), idx(r, c+1)})
			}
			if r+1 < 5 {
				edges = append(edges, [2]int32{idx(r, c), idx(r+1, c)})
			}
		}
	}
	g := mustGraph(t, 25, edges)
	colors, _, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	require.Equal(t, 2, distinctColors(colors))
}

func TestColorDeterministicUnderSequentialSingleThread(t *testing.T) {
	g := mustGraph(t, 10, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {5, 6}, {6, 7}, {0, 5}})
	c1, _, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	c2, _, err := Color(g, Sequential, WithThreads(1))
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestColorRejectsNilGraph(t *testing.T) {
	_, _, err := Color(nil, Sequential)
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestColorRejectsUnknownStrategy(t *testing.T) {
	g := mustGraph(t, 3, [][2]int32{{0, 1}})
	_, _, err := Color(g, Strategy(99))
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestColorBipartitePathTakesFastPath(t *testing.T) {
	g := mustGraph(t, 6, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	colors, stats, err := Color(g, Sequential, WithDetectBipartite(true))
	require.NoError(t, err)
	require.True(t, stats.BipartiteDetected)
	requireValid(t, g, colors)
	require.Equal(t, 2, distinctColors(colors))
}

func TestColorBipartiteFastPathFallsThroughOnOddCycle(t *testing.T) {
	g := mustGraph(t, 3, [][2]int32{{0, 1}, {1, 2}, {2, 0}})
	colors, stats, err := Color(g, Sequential, WithDetectBipartite(true))
	require.NoError(t, err)
	require.False(t, stats.BipartiteDetected)
	requireValid(t, g, colors)
	require.Equal(t, 3, distinctColors(colors))
}
