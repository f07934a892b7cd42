package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wsmatch/core"
)

// TestNewEdge_Canonical verifies NewEdge(a,b) == NewEdge(b,a) with
// First < Second, for all distinct pairs in a small range.
func TestNewEdge_Canonical(t *testing.T) {
	for a := core.Vertex(0); a < 8; a++ {
		for b := core.Vertex(0); b < 8; b++ {
			if a == b {
				if _, err := core.NewEdge(a, a); !errors.Is(err, core.ErrSelfLoop) {
					t.Errorf("NewEdge(%d,%d): want ErrSelfLoop, got %v", a, a, err)
				}
				continue
			}
			ab, err := core.NewEdge(a, b)
			if err != nil {
				t.Fatalf("NewEdge(%d,%d): %v", a, b, err)
			}
			ba, err := core.NewEdge(b, a)
			if err != nil {
				t.Fatalf("NewEdge(%d,%d): %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("NewEdge(%d,%d) = %v; NewEdge(%d,%d) = %v", a, b, ab, b, a, ba)
			}
			if ab.First >= ab.Second {
				t.Errorf("NewEdge(%d,%d): First %d >= Second %d", a, b, ab.First, ab.Second)
			}
		}
	}
}

func TestVertices_SortedAndComplete(t *testing.T) {
	ew := core.EdgeWeights{
		core.MustEdge(7, 2): 1,
		core.MustEdge(0, 9): 3,
		core.MustEdge(2, 9): 2,
	}
	got, err := ew.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Vertex{0, 2, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("Vertices = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices = %v; want %v", got, want)
		}
	}
}

// TestVertices_RejectsNonCanonical checks that extraction always fails
// on edge keys with First > Second.
func TestVertices_RejectsNonCanonical(t *testing.T) {
	ew := core.EdgeWeights{{First: 5, Second: 1}: 1}
	if _, err := ew.Vertices(); !errors.Is(err, core.ErrNonCanonicalEdge) {
		t.Errorf("want ErrNonCanonicalEdge, got %v", err)
	}
	ew = core.EdgeWeights{{First: 3, Second: 3}: 1}
	if _, err := ew.Vertices(); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("want ErrSelfLoop, got %v", err)
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if sum, ok := core.CheckedAdd(core.MaxWeight, 1); ok {
		t.Errorf("CheckedAdd overflow not detected, got %d", sum)
	}
	if sum, ok := core.CheckedAdd(3, 4); !ok || sum != 7 {
		t.Errorf("CheckedAdd(3,4) = %d, %v", sum, ok)
	}
	if _, ok := core.CheckedMul(core.MaxWeight/2+1, 2); ok {
		t.Error("CheckedMul overflow not detected")
	}
	if p, ok := core.CheckedMul(0, core.MaxWeight); !ok || p != 0 {
		t.Errorf("CheckedMul(0,max) = %d, %v", p, ok)
	}
	if p, ok := core.CheckedMul(6, 7); !ok || p != 42 {
		t.Errorf("CheckedMul(6,7) = %d, %v", p, ok)
	}
}
