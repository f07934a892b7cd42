package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wsmatch/core"
)

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProblem(t *testing.T) {
	path := writeProblem(t, `
pattern:
  - {a: 0, b: 1, weight: 3}
target:
  - {a: 0, b: 1, weight: 5}
  - {a: 1, b: 2, weight: 1}
  - {a: 0, b: 2, weight: 2}
parameters:
  timeout_ms: 2500
  max_solutions: 2
  weight_upper_bound: 4
  seed: 7
`)

	pattern, target, params, err := loadProblem(path)
	require.NoError(t, err)

	require.Equal(t, core.EdgeWeights{core.MustEdge(0, 1): 3}, pattern)
	require.Len(t, target, 3)
	require.Equal(t, core.Weight(1), target[core.MustEdge(1, 2)])

	require.Equal(t, 2500*time.Millisecond, params.Timeout)
	require.Equal(t, 2, params.MaxSolutions)
	require.Equal(t, core.Weight(4), params.WeightUpperBound)
	require.Equal(t, int64(7), params.Seed)
	// Untouched fields keep their defaults.
	require.Equal(t, uint64(1_000_000), params.IterationsTimeout)
	require.Equal(t, 6, params.MaxDistanceForDistanceReduction)
}

func TestLoadProblem_BadEdges(t *testing.T) {
	path := writeProblem(t, `
pattern:
  - {a: 1, b: 1, weight: 3}
target:
  - {a: 0, b: 1, weight: 5}
`)
	_, _, _, err := loadProblem(path)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	path = writeProblem(t, `
pattern:
  - {a: 0, b: 1, weight: 3}
  - {a: 1, b: 0, weight: 4}
target:
  - {a: 0, b: 1, weight: 5}
`)
	_, _, _, err = loadProblem(path)
	require.ErrorIs(t, err, ErrDuplicateEdge)
}
