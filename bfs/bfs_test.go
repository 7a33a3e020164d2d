package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/bfs"
)

// adjGraph is an adjacency-list graph keyed by vertex name.
type adjGraph map[string][]string

func (g adjGraph) Neighbors(v string) []string { return g[v] }

func (g adjGraph) Has(v string) bool {
	_, ok := g[v]
	return ok
}

// undirected builds an adjGraph with both directions of every edge.
func undirected(edges ...[2]string) adjGraph {
	g := adjGraph{}
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], e[1])
		g[e[1]] = append(g[e[1]], e[0])
	}
	return g
}

// neighborFunc adapts a function to bfs.Graph without a vertex set.
type neighborFunc func(int) []int

func (f neighborFunc) Neighbors(v int) []int { return f(v) }

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := undirected([2]string{"A", "B"})
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_ChainOrderDepthParent(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 3, res.Depth["D"])
	assert.Equal(t, "C", res.Parent["D"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent, "start vertex should have no parent")

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestBFS_Layering(t *testing.T) {
	// A fans out to B and C; both reach D.
	g := undirected([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"], "first discoverer wins")
}

func TestBFS_MaxDepth(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("C")
	assert.Error(t, err)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"C", "D"})

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool {
		return nbr != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.NotContains(t, res.Depth, "D")
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(v string, _ int) error {
		if v == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	require.NotNil(t, res)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_ContextCancelled(t *testing.T) {
	g := undirected([2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_GraphWithoutVertexSet(t *testing.T) {
	// Infinite number line; depth cap keeps the walk finite.
	line := neighborFunc(func(v int) []int { return []int{v - 1, v + 1} })

	res, err := bfs.BFS[int](line, 0, bfs.WithMaxDepth[int](2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, -1, 1, -2, 2}, res.Order)
}
