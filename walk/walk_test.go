package walk_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/walk"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(3, nil, nil, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
	require.NoError(t, err)

	return g
}

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// mirror copies g into a dominikbraun/graph undirected graph, one edge per
// distinct unordered pair.
func mirror(t *testing.T, g *core.Graph) graph.Graph[int, int] {
	t.Helper()
	m := graph.New(graph.IntHash)
	for v := 0; v < g.VertexCount(); v++ {
		require.NoError(t, m.AddVertex(v))
	}
	for u, nbs := range g.AdjacencyList() {
		for _, v := range nbs {
			if u >= v {
				continue
			}
			if _, err := m.Edge(u, v); err == nil {
				continue
			}
			require.NoError(t, m.AddEdge(u, v))
		}
	}

	return m
}

func sorted(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want walk.Algorithm
		ok   bool
	}{
		{"dfs", walk.DFS, true},
		{"DFS", walk.DFS, true},
		{" bfs ", walk.BFS, true},
		{"Bfs", walk.BFS, true},
		{"", 0, false},
		{"dijkstra", 0, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got, err := walk.ParseAlgorithm(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, walk.ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "dfs", walk.DFS.String())
	assert.Equal(t, "bfs", walk.BFS.String())
	assert.Equal(t, "Algorithm(9)", walk.Algorithm(9).String())
}

func TestRun_Triangle(t *testing.T) {
	g := triangle(t)
	ctx := context.Background()

	order, err := walk.Run(ctx, g, walk.DFS, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, order)

	order, err = walk.Run(ctx, g, walk.BFS, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, order)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := walk.Run(ctx, nil, walk.DFS, 0)
	assert.ErrorIs(t, err, walk.ErrGraphNil)

	_, err = walk.Run(ctx, triangle(t), walk.Algorithm(7), 0)
	assert.ErrorIs(t, err, walk.ErrUnknownAlgorithm)

	_, err = walk.Run(ctx, triangle(t), walk.BFS, 3)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	for _, algo := range []walk.Algorithm{walk.DFS, walk.BFS} {
		_, err = walk.Run(ctx, empty, algo, 0)
		assert.ErrorIs(t, err, core.ErrOutOfRange, algo.String())
	}
}

// TestRun_SameReachableSet: DFS and BFS visit the same set, and it matches
// an independent graph library's reachability.
func TestRun_SameReachableSet(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(t, 40, 0.05, seed)
		ref := mirror(t, g)

		for start := 0; start < g.VertexCount(); start++ {
			d, err := walk.Run(ctx, g, walk.DFS, start)
			require.NoError(t, err)
			b, err := walk.Run(ctx, g, walk.BFS, start)
			require.NoError(t, err)

			var want []int
			require.NoError(t, graph.BFS(ref, start, func(v int) bool {
				want = append(want, v)
				return false
			}))

			assert.Equal(t, sorted(want), sorted(d), "seed %d start %d dfs", seed, start)
			assert.Equal(t, sorted(d), sorted(b), "seed %d start %d bfs", seed, start)
		}
	}
}

func TestFromEach_MatchesRun(t *testing.T) {
	ctx := context.Background()
	g := randomGraph(t, 50, 0.06, 42)

	for _, algo := range []walk.Algorithm{walk.DFS, walk.BFS} {
		all, err := walk.FromEach(ctx, g, algo, 8)
		require.NoError(t, err)
		require.Len(t, all, g.VertexCount())

		for s, got := range all {
			want, err := walk.Run(ctx, g, algo, s)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%v from %d", algo, s)
		}
	}
}

func TestFromEach_DefaultConcurrency(t *testing.T) {
	all, err := walk.FromEach(context.Background(), triangle(t), walk.DFS, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 1}, {1, 2, 0}, {2, 0, 1}}, all)
}

func TestFromEach_Errors(t *testing.T) {
	_, err := walk.FromEach(context.Background(), nil, walk.BFS, 2)
	assert.ErrorIs(t, err, walk.ErrGraphNil)

	_, err = walk.FromEach(context.Background(), triangle(t), walk.Algorithm(-1), 2)
	assert.ErrorIs(t, err, walk.ErrUnknownAlgorithm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := walk.FromEach(ctx, triangle(t), walk.BFS, 2)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromEach_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	all, err := walk.FromEach(context.Background(), g, walk.DFS, 2)
	require.NoError(t, err)
	assert.Empty(t, all)
}
