package order_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/neighbours"
	"github.com/katalvlaran/wsmatch/order"
	"github.com/katalvlaran/wsmatch/search"
)

func domainOf(numTV int, members ...int) *bitset.Dense {
	d := bitset.New(numTV)
	for _, tv := range members {
		d.Set(tv)
	}
	return d
}

func TestChoose_SmallestDomainWins(t *testing.T) {
	raw, err := search.NewRawData([]*bitset.Dense{
		domainOf(4, 0, 1, 2, 3),
		domainOf(4, 1, 2),
		domainOf(4, 0, 2, 3),
	}, 4)
	require.NoError(t, err)

	var chooser order.VariableChooser
	rng := rand.New(rand.NewSource(1))

	res := chooser.Choose(raw.Accessor(), rng)
	require.True(t, res.Found)
	require.False(t, res.EmptyDomain)
	require.Equal(t, core.Vertex(1), res.Vertex)
}

func TestChoose_RewritesSuperset(t *testing.T) {
	raw, err := search.NewRawData([]*bitset.Dense{
		domainOf(4, 3),
		domainOf(4, 1, 2),
		domainOf(4, 0, 2, 3),
	}, 4)
	require.NoError(t, err)
	acc := raw.Accessor()

	var chooser order.VariableChooser
	rng := rand.New(rand.NewSource(1))

	res := chooser.Choose(acc, rng)
	require.True(t, res.Found)
	// The assigned vertex 0 dropped out of the superset.
	require.Equal(t, []core.Vertex{1, 2}, acc.UnassignedSuperset())
}

func TestChoose_AllAssigned(t *testing.T) {
	raw, err := search.NewRawData([]*bitset.Dense{
		domainOf(3, 0),
		domainOf(3, 1),
	}, 3)
	require.NoError(t, err)

	var chooser order.VariableChooser
	res := chooser.Choose(raw.Accessor(), rand.New(rand.NewSource(1)))
	require.False(t, res.Found)
	require.False(t, res.EmptyDomain)
}

func TestChoose_EmptyDomain(t *testing.T) {
	raw, err := search.NewRawData([]*bitset.Dense{
		domainOf(3, 0),
		domainOf(3, 0, 1),
	}, 3)
	require.NoError(t, err)
	trav := raw.Traversal()

	trav.EraseImpossibleAssignment(core.Assignment{PatternVertex: 1, TargetVertex: 0})
	trav.EraseImpossibleAssignment(core.Assignment{PatternVertex: 1, TargetVertex: 1})

	var chooser order.VariableChooser
	res := chooser.Choose(raw.Accessor(), rand.New(rand.NewSource(1)))
	require.True(t, res.EmptyDomain)
}

func TestPick_PrefersHighDegree(t *testing.T) {
	// Path 0-1-2: degrees 1, 2, 1.
	target, err := neighbours.New(core.EdgeWeights{
		core.MustEdge(0, 1): 1,
		core.MustEdge(1, 2): 1,
	})
	require.NoError(t, err)

	var picker order.ValuePicker
	rng := rand.New(rand.NewSource(7))

	tv := picker.Pick(domainOf(3, 0, 1, 2), target, rng)
	require.Equal(t, core.Vertex(1), tv)

	// Degree tie: the pick must still come from the domain.
	tv = picker.Pick(domainOf(3, 0, 2), target, rng)
	require.Contains(t, []core.Vertex{0, 2}, tv)
}

func TestPick_Deterministic(t *testing.T) {
	target, err := neighbours.New(core.EdgeWeights{
		core.MustEdge(0, 1): 1,
		core.MustEdge(1, 2): 1,
		core.MustEdge(2, 3): 1,
	})
	require.NoError(t, err)

	run := func(seed int64) []core.Vertex {
		var picker order.ValuePicker
		rng := rand.New(rand.NewSource(seed))
		out := make([]core.Vertex, 0, 8)
		for i := 0; i < 8; i++ {
			out = append(out, picker.Pick(domainOf(4, 0, 1, 2, 3), target, rng))
		}
		return out
	}
	require.Equal(t, run(42), run(42))
}
