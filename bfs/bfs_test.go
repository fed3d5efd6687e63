package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
)

// triangle builds vertices {0,1,2} with edges 0-1, 1-2, 0-2 in that order.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(3, nil, nil, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
	require.NoError(t, err)

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	res, err := bfs.BFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartOutOfRange(t *testing.T) {
	g := triangle(t)
	for _, start := range []int{-1, 3, 42} {
		res, err := bfs.BFS(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, core.ErrOutOfRange, "start %d", start)
	}
}

func TestBFS_Triangle(t *testing.T) {
	res, err := bfs.BFS(triangle(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, res.Order)
	assert.Equal(t, []int{0, 1, 1}, res.Depth)
}

func TestBFS_TriangleOldestFirst(t *testing.T) {
	g, err := builder.BuildGraph(3,
		[]core.GraphOption{core.WithNeighborOrder(core.OldestFirst)}, nil,
		builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, [][]int{{0}}, res.Layers())
}

func TestBFS_SelfLoopAndParallel(t *testing.T) {
	g, err := builder.BuildGraph(2, []core.GraphOption{core.WithLoops()}, nil,
		builder.Edges([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1}))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_Star(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, nil, builder.Star(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3, 2, 1}, res.Order)

	res, err = bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 4, 3, 1}, res.Order)
	assert.Equal(t, []int{1, 2, 0, 2, 2}, res.Depth)
	assert.Equal(t, [][]int{{2}, {0}, {4, 3, 1}}, res.Layers())
}

func TestBFS_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, nil, builder.Path(3), builder.Shifted(3, builder.Cycle(3)))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, res.Order)
	for v := 3; v < 6; v++ {
		assert.False(t, res.Reached(v))
		assert.Equal(t, -1, res.Depth[v])
	}
}

// TestBFS_LayerInvariants checks distance layering on random graphs.
func TestBFS_LayerInvariants(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(70, nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(70, 0.04))
		require.NoError(t, err)

		for _, start := range []int{0, 35, 69} {
			res, err := bfs.BFS(g, start)
			require.NoError(t, err)
			require.Equal(t, start, res.Order[0])

			// depths never decrease along Order
			for i := 1; i < len(res.Order); i++ {
				assert.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
			}
			seen := make(map[int]bool, len(res.Order))
			for _, v := range res.Order {
				require.False(t, seen[v], "duplicate %d", v)
				seen[v] = true

				nbs, err := g.Neighbors(v)
				require.NoError(t, err)
				hasParent := v == start
				for _, u := range nbs {
					require.True(t, res.Reached(u), "neighbor %d of visited %d unreached", u, v)
					diff := res.Depth[u] - res.Depth[v]
					assert.True(t, diff >= -1 && diff <= 1, "edge %d-%d spans %d layers", v, u, diff)
					if res.Depth[u] == res.Depth[v]-1 {
						hasParent = true
					}
				}
				assert.True(t, hasParent, "vertex %d at depth %d has no parent", v, res.Depth[v])
			}
		}
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, -1, -1}, res.Depth)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS(triangle(t), 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 0 && nbr == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2}, res.Depth)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g, err := builder.BuildGraph(3, nil, nil, builder.Path(3))
	require.NoError(t, err)

	type ev struct{ v, d int }
	var enq, deq, vis []ev
	_, err = bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, ev{v, d}) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, ev{v, d}) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, ev{v, d}); return nil }),
	)
	require.NoError(t, err)

	want := []ev{{0, 0}, {1, 1}, {2, 2}}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

func TestBFS_HookError(t *testing.T) {
	boom := errors.New("boom")
	res, err := bfs.BFS(triangle(t), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 2}, res.Order)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g, err := builder.BuildGraph(50, nil, nil, builder.Path(50))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	res, err = bfs.BFS(g, 0, bfs.WithContext(ctx), bfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			cancel()
		}
		return nil
	}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestBFS_Scratch(t *testing.T) {
	g := triangle(t)
	buf := []bool{true, false, true}

	res, err := bfs.BFS(g, 1, bfs.WithScratch(buf))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, res.Order)

	_, err = bfs.BFS(g, 0, bfs.WithScratch(make([]bool, 4)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g, err := builder.BuildGraph(9, nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)

	errs := make(chan error, 4)
	orders := make(chan []int, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.BFS(g, 0)
			errs <- err
			if err == nil {
				orders <- res.Order
			} else {
				orders <- nil
			}
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
		assert.Equal(t, []int{0, 3, 1, 6, 4, 2, 7, 5, 8}, <-orders)
	}
}
