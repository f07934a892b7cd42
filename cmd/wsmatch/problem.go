package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/solver"
)

// ErrDuplicateEdge is returned when a problem file lists an edge twice.
var ErrDuplicateEdge = errors.New("wsmatch: duplicate edge in problem file")

// problemEdge is one weighted edge in a problem file.
type problemEdge struct {
	A      uint32 `yaml:"a"`
	B      uint32 `yaml:"b"`
	Weight uint64 `yaml:"weight"`
}

// problemParameters are optional overrides; absent fields keep the
// solver defaults.
type problemParameters struct {
	TimeoutMs                      *int64  `yaml:"timeout_ms"`
	IterationsTimeout              *uint64 `yaml:"iterations_timeout"`
	TerminateWithFirstFullSolution *bool   `yaml:"terminate_with_first_full_solution"`
	MaxSolutions                   *int    `yaml:"max_solutions"`
	MaxDistanceForInitialisation   *int    `yaml:"max_distance_for_domain_initialisation"`
	MaxDistanceForReduction        *int    `yaml:"max_distance_for_distance_reduction"`
	WeightUpperBound               *uint64 `yaml:"weight_upper_bound"`
	Seed                           *int64  `yaml:"seed"`
}

// problemFile is the YAML schema of one solve problem.
type problemFile struct {
	Pattern    []problemEdge     `yaml:"pattern"`
	Target     []problemEdge     `yaml:"target"`
	Parameters problemParameters `yaml:"parameters"`
}

func edgeWeights(edges []problemEdge) (core.EdgeWeights, error) {
	ew := make(core.EdgeWeights, len(edges))
	for _, pe := range edges {
		edge, err := core.NewEdge(core.Vertex(pe.A), core.Vertex(pe.B))
		if err != nil {
			return nil, err
		}
		if _, dup := ew[edge]; dup {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, edge.First, edge.Second)
		}
		ew[edge] = core.Weight(pe.Weight)
	}
	return ew, nil
}

func (p *problemParameters) apply(params *solver.Parameters) {
	if p.TimeoutMs != nil {
		params.Timeout = time.Duration(*p.TimeoutMs) * time.Millisecond
	}
	if p.IterationsTimeout != nil {
		params.IterationsTimeout = *p.IterationsTimeout
	}
	if p.TerminateWithFirstFullSolution != nil {
		params.TerminateWithFirstFullSolution = *p.TerminateWithFirstFullSolution
	}
	if p.MaxSolutions != nil {
		params.MaxSolutions = *p.MaxSolutions
	}
	if p.MaxDistanceForInitialisation != nil {
		params.MaxDistanceForDomainInitialisation = *p.MaxDistanceForInitialisation
	}
	if p.MaxDistanceForReduction != nil {
		params.MaxDistanceForDistanceReduction = *p.MaxDistanceForReduction
	}
	if p.WeightUpperBound != nil {
		params.WeightUpperBound = core.Weight(*p.WeightUpperBound)
	}
	if p.Seed != nil {
		params.Seed = *p.Seed
	}
}

// loadProblem parses a YAML problem file into edge maps and parameters.
func loadProblem(path string) (pattern, target core.EdgeWeights, params solver.Parameters, err error) {
	params = solver.DefaultParameters()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, params, fmt.Errorf("wsmatch: reading problem: %w", err)
	}
	var file problemFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, params, fmt.Errorf("wsmatch: parsing problem: %w", err)
	}

	if pattern, err = edgeWeights(file.Pattern); err != nil {
		return nil, nil, params, fmt.Errorf("wsmatch: pattern: %w", err)
	}
	if target, err = edgeWeights(file.Target); err != nil {
		return nil, nil, params, fmt.Errorf("wsmatch: target: %w", err)
	}
	file.Parameters.apply(&params)
	return pattern, target, params, nil
}
