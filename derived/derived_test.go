package derived_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/derived"
	"github.com/katalvlaran/wsmatch/neighbours"
)

// Triangle 0-1-2 with a tail 2-3.
func triangleWithTail(t *testing.T) *neighbours.Data {
	t.Helper()
	d, err := neighbours.New(core.EdgeWeights{
		core.MustEdge(0, 1): 1,
		core.MustEdge(1, 2): 1,
		core.MustEdge(0, 2): 1,
		core.MustEdge(2, 3): 1,
	})
	require.NoError(t, err)
	return d
}

func TestData_TriangleCounts(t *testing.T) {
	g := derived.NewGraphs(triangleWithTail(t))
	require.Equal(t, 1, g.Data(0).TriangleCount)
	require.Equal(t, 1, g.Data(1).TriangleCount)
	require.Equal(t, 1, g.Data(2).TriangleCount)
	require.Equal(t, 0, g.Data(3).TriangleCount)
}

func TestData_PathCounts(t *testing.T) {
	g := derived.NewGraphs(triangleWithTail(t))

	// From 0: length-2 paths 0-1-2, 0-2-1, 0-2-3.
	d0 := g.Data(0)
	require.Equal(t, []derived.NeighbourCount{
		{Vertex: 1, Count: 1},
		{Vertex: 2, Count: 1},
		{Vertex: 3, Count: 1},
	}, d0.D2)
	require.Equal(t, []int{1, 1, 1}, d0.D2SortedCounts)

	// From 3: 3-2-0 and 3-2-1, no others.
	d3 := g.Data(3)
	require.Equal(t, []derived.NeighbourCount{
		{Vertex: 0, Count: 1},
		{Vertex: 1, Count: 1},
	}, d3.D2)

	// Length-3 paths from 3: 3-2-0-1 and 3-2-1-0.
	require.Equal(t, []derived.NeighbourCount{
		{Vertex: 0, Count: 1},
		{Vertex: 1, Count: 1},
	}, d3.D3)
}

func TestData_HandleStability(t *testing.T) {
	g := derived.NewGraphs(triangleWithTail(t))
	first := g.Data(2)
	// Computing other vertices must not move or rewrite the entry.
	g.Data(0)
	g.Data(1)
	g.Data(3)
	require.Same(t, first, g.Data(2))
}

func TestCountsDominated(t *testing.T) {
	require.True(t, derived.CountsDominated([]int{3, 1}, []int{4, 2, 1}))
	require.False(t, derived.CountsDominated([]int{3, 1}, []int{4}))
	require.False(t, derived.CountsDominated([]int{3, 3}, []int{4, 2}))
	require.True(t, derived.CountsDominated(nil, nil))
}

func TestCompatible(t *testing.T) {
	nd := triangleWithTail(t)
	g := derived.NewGraphs(nd)

	// Any vertex is compatible with itself in the same graph.
	for v := core.Vertex(0); v < 4; v++ {
		require.True(t, derived.Compatible(g.Data(v), g.Data(v)), "v=%d", v)
	}
	// 0 and 1 are exchanged by the graph's automorphism.
	require.True(t, derived.Compatible(g.Data(0), g.Data(1)))
	// Vertex 2 (in the triangle, with the tail) cannot map onto vertex 3.
	require.False(t, derived.Compatible(g.Data(2), g.Data(3)))
	// 3 cannot map onto 0 either: 3 reaches two vertices by length-3
	// paths, 0 reaches only one.
	require.False(t, derived.Compatible(g.Data(3), g.Data(0)))
}
