package bitset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/bitset"
)

func TestBitLength(t *testing.T) {
	require.Equal(t, 0, bitset.BitLength(0))
	for _, x := range []uint64{1, 2, 3, 7, 8, 255, 256, 1 << 40, ^uint64(0)} {
		n := bitset.BitLength(x)
		require.GreaterOrEqual(t, n, 1, "x=%d", x)
		require.LessOrEqual(t, n, 64, "x=%d", x)
		require.Equal(t, uint64(1), x>>(n-1), "x=%d", x)
	}
}

func TestRightmostZeroBits(t *testing.T) {
	require.Equal(t, 64, bitset.RightmostZeroBits(0))
	for _, x := range []uint64{1, 2, 6, 8, 96, 1 << 40, ^uint64(0)} {
		n := bitset.RightmostZeroBits(x)
		require.Equal(t, x, (x>>n)<<n, "x=%d", x)
		require.NotZero(t, (x>>n)&1, "x=%d", x)
	}
}

func TestDense_Basics(t *testing.T) {
	d := bitset.New(130)
	require.Equal(t, 130, d.Len())
	require.True(t, d.None())

	d.Set(0)
	d.Set(64)
	d.Set(129)
	require.Equal(t, 3, d.Count())
	require.True(t, d.Test(64))
	require.False(t, d.Test(63))

	first, ok := d.FirstSet()
	require.True(t, ok)
	require.Equal(t, 0, first)
	next, ok := d.NextSet(0)
	require.True(t, ok)
	require.Equal(t, 64, next)
	next, ok = d.NextSet(64)
	require.True(t, ok)
	require.Equal(t, 129, next)
	_, ok = d.NextSet(129)
	require.False(t, ok)

	d.Clear(64)
	require.Equal(t, []int{0, 129}, d.Members(nil))
}

func TestDense_Single(t *testing.T) {
	d := bitset.New(70)
	_, ok := d.Single()
	require.False(t, ok)
	d.Set(69)
	v, ok := d.Single()
	require.True(t, ok)
	require.Equal(t, 69, v)
	d.Set(1)
	_, ok = d.Single()
	require.False(t, ok)
}

func TestDense_SetOps(t *testing.T) {
	a := bitset.New(100)
	b := bitset.New(100)
	for _, i := range []int{1, 5, 50, 99} {
		a.Set(i)
	}
	for _, i := range []int{5, 50, 80} {
		b.Set(i)
	}

	x := a.Clone()
	x.IntersectWith(b)
	require.Equal(t, []int{5, 50}, x.Members(nil))
	require.True(t, x.IsSubsetOf(a))
	require.True(t, x.IsSubsetOf(b))
	require.False(t, a.IsSubsetOf(b))

	y := a.Clone()
	y.DiffWith(b)
	require.Equal(t, []int{1, 99}, y.Members(nil))

	z := a.Clone()
	z.UnionWith(b)
	require.Equal(t, []int{1, 5, 50, 80, 99}, z.Members(nil))
}

func TestDense_SwapIsConstantTimeExchange(t *testing.T) {
	a := bitset.New(64)
	b := bitset.New(64)
	a.Set(3)
	b.Set(60)
	a.Swap(b)
	require.Equal(t, []int{60}, a.Members(nil))
	require.Equal(t, []int{3}, b.Members(nil))
}

// Differential test against map[int]bool over random operations.
func TestDense_RandomAgainstModel(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	d := bitset.New(n)
	model := make(map[int]bool)

	for step := 0; step < 5000; step++ {
		i := rng.Intn(n)
		switch rng.Intn(3) {
		case 0:
			d.Set(i)
			model[i] = true
		case 1:
			d.Clear(i)
			delete(model, i)
		default:
			require.Equal(t, model[i], d.Test(i), "step %d bit %d", step, i)
		}
	}
	require.Equal(t, len(model), d.Count())
	for _, m := range d.Members(nil) {
		require.True(t, model[m])
	}
}
