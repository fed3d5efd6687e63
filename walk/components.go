package walk

import (
	"context"

	"github.com/katalvlaran/graphwalk/core"
)

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex and each lists its vertices
// in BFS order from that vertex, so out[i][0] is the smallest member.
//
// Time:   O(V + E).
// Memory: O(V) for the seen flags and the shared queue.
func Components(ctx context.Context, g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]int

	for v0 := 0; v0 < n; v0++ {
		if seen[v0] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// BFS to collect component; queue[start:] is this component
		start := len(queue)
		queue = append(queue, v0)
		seen[v0] = true
		for qi := start; qi < len(queue); qi++ {
			nbs, err := g.Neighbors(queue[qi])
			if err != nil {
				return nil, err
			}
			for _, u := range nbs {
				if !seen[u] {
					seen[u] = true
					queue = append(queue, u)
				}
			}
		}
		comps = append(comps, queue[start:len(queue):len(queue)])
	}

	return comps, nil
}
