package stack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/stack"
)

func TestStack_Basics(t *testing.T) {
	var s stack.Stack[int]
	require.True(t, s.Empty())

	*s.Push() = 10
	*s.Push() = 20
	require.Equal(t, 2, s.Len())
	require.Equal(t, 20, *s.Top())
	require.Equal(t, 10, *s.OneBelowTop())

	s.Pop()
	require.Equal(t, 10, *s.Top())

	// Reused storage holds the previous occupant until overwritten.
	reused := s.Push()
	require.Equal(t, 20, *reused)
	*reused = 30
	require.Equal(t, 30, *s.Top())

	s.Clear()
	require.True(t, s.Empty())
}

func TestStack_PanicsOnMisuse(t *testing.T) {
	var s stack.Stack[string]
	require.Panics(t, func() { s.Pop() })
	require.Panics(t, func() { s.Top() })
	*s.Push() = "x"
	require.Panics(t, func() { s.OneBelowTop() })
	require.Panics(t, func() { s.At(1) })
}

// Differential test: after any random operation sequence the stack must
// match a plain slice used as the reference model, element for element,
// including the top two elements.
func TestStack_RandomAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var s stack.Stack[int]
	var model []int

	for step := 0; step < 10000; step++ {
		switch op := rng.Intn(10); {
		case op < 5: // push
			v := rng.Int()
			*s.Push() = v
			model = append(model, v)
		case op < 8: // pop
			if len(model) > 0 {
				s.Pop()
				model = model[:len(model)-1]
			}
		case op == 8 && rng.Intn(100) == 0: // rare clear
			s.Clear()
			model = model[:0]
		}

		require.Equal(t, len(model), s.Len(), "step %d", step)
		require.Equal(t, len(model) == 0, s.Empty(), "step %d", step)
		for i := range model {
			require.Equal(t, model[i], *s.At(i), "step %d index %d", step, i)
		}
		if len(model) > 0 {
			require.Equal(t, model[len(model)-1], *s.Top(), "step %d", step)
		}
		if len(model) > 1 {
			require.Equal(t, model[len(model)-2], *s.OneBelowTop(), "step %d", step)
		}
	}
}
