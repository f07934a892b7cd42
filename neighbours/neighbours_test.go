package neighbours_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/neighbours"
)

// Path 0-1-2-3-4 with a chord 0-2.
func pathWithChord() core.EdgeWeights {
	return core.EdgeWeights{
		core.MustEdge(0, 1): 1,
		core.MustEdge(1, 2): 2,
		core.MustEdge(2, 3): 3,
		core.MustEdge(3, 4): 4,
		core.MustEdge(0, 2): 5,
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := neighbours.New(core.EdgeWeights{{First: 2, Second: 2}: 1})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = neighbours.New(core.EdgeWeights{{First: 4, Second: 1}: 1})
	require.ErrorIs(t, err, core.ErrNonCanonicalEdge)

	_, err = neighbours.New(core.EdgeWeights{core.MustEdge(1, 2): 1})
	require.True(t, errors.Is(err, neighbours.ErrNonContiguous))
}

func TestData_AdjacencyAndWeights(t *testing.T) {
	d, err := neighbours.New(pathWithChord())
	require.NoError(t, err)

	require.Equal(t, 5, d.NumVertices())
	require.Equal(t, 5, d.NumEdges())
	require.Equal(t, 2, d.Degree(0))
	require.Equal(t, 3, d.Degree(2))
	require.Equal(t, 1, d.Degree(4))

	list := d.NeighboursAndWeights(2)
	require.Equal(t, []neighbours.VertexWeight{
		{Vertex: 0, Weight: 5},
		{Vertex: 1, Weight: 2},
		{Vertex: 3, Weight: 3},
	}, list)

	w, ok := d.EdgeWeight(3, 2)
	require.True(t, ok)
	require.Equal(t, core.Weight(3), w)
	_, ok = d.EdgeWeight(0, 4)
	require.False(t, ok)

	require.Equal(t, []core.Weight{1, 2, 3, 4, 5}, d.SortedWeights())
}

func TestNearData_DistanceLayers(t *testing.T) {
	d, err := neighbours.New(pathWithChord())
	require.NoError(t, err)
	near := neighbours.NewNear(d)

	// From vertex 4: layers are {3}, {2}, {0,1}, then empty forever.
	require.Equal(t, []int{3}, near.VerticesAtExactDistance(4, 1).Members(nil))
	require.Equal(t, []int{2}, near.VerticesAtExactDistance(4, 2).Members(nil))
	require.Equal(t, []int{0, 1}, near.VerticesAtExactDistance(4, 3).Members(nil))
	require.True(t, near.VerticesAtExactDistance(4, 4).None())
	require.True(t, near.VerticesAtExactDistance(4, 9).None())

	require.Equal(t, []int{2, 3}, near.VerticesUpToDistance(4, 2).Members(nil))
	require.Equal(t, []int{0, 1, 2, 3}, near.VerticesUpToDistance(4, 3).Members(nil))
	// Saturated: larger d returns the same saturated set.
	require.Equal(t, []int{0, 1, 2, 3}, near.VerticesUpToDistance(4, 8).Members(nil))

	require.Equal(t, 0, near.NumVerticesUpToDistance(4, 0))
	require.Equal(t, 4, near.NumVerticesUpToDistance(4, 7))
}

func TestNearData_LargerDistanceFirst(t *testing.T) {
	d, err := neighbours.New(pathWithChord())
	require.NoError(t, err)
	near := neighbours.NewNear(d)

	// Asking for d=3 first must still build the intermediate layers.
	require.Equal(t, []int{0, 1}, near.VerticesAtExactDistance(4, 3).Members(nil))
	require.Equal(t, []int{3}, near.VerticesAtExactDistance(4, 1).Members(nil))
}

func TestNearData_DegreeCounts(t *testing.T) {
	d, err := neighbours.New(pathWithChord())
	require.NoError(t, err)
	near := neighbours.NewNear(d)

	// Distance 1 from vertex 2: vertices {0,1,3} with degrees {2,2,2}.
	require.Equal(t, []neighbours.DegreeCount{{Degree: 2, Count: 3}},
		near.DegreeCountsAtExactDistance(2, 1))

	// Distance <=2 from vertex 4: {2,3} with degrees {3,2}.
	require.Equal(t, []neighbours.DegreeCount{{Degree: 2, Count: 1}, {Degree: 3, Count: 1}},
		near.DegreeCountsUpToDistance(4, 2))

	// Beyond the graph's diameter the exact summary is empty.
	require.Empty(t, near.DegreeCountsAtExactDistance(4, 6))
}

func TestDegreeCountsDominated(t *testing.T) {
	p := []neighbours.DegreeCount{{Degree: 2, Count: 2}}
	tOK := []neighbours.DegreeCount{{Degree: 1, Count: 1}, {Degree: 3, Count: 2}}
	tBad := []neighbours.DegreeCount{{Degree: 1, Count: 4}, {Degree: 2, Count: 1}}

	require.True(t, neighbours.DegreeCountsDominated(p, tOK))
	require.False(t, neighbours.DegreeCountsDominated(p, tBad))
	require.True(t, neighbours.DegreeCountsDominated(nil, nil))
	require.False(t, neighbours.DegreeCountsDominated(p, nil))
}
