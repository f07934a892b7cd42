package reduce

import (
	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/derived"
	"github.com/katalvlaran/wsmatch/neighbours"
	"github.com/katalvlaran/wsmatch/search"
)

// Kind tags the propagator variants. The set is fixed per solve call,
// so dispatch is a switch rather than dynamic method calls.
type Kind int

const (
	KindNeighbours Kind = iota
	KindDistances
	KindDerivedGraphs
)

// Reducer is one propagator instance, created once per solve call and
// reused across the whole search. Not safe for concurrent use.
type Reducer struct {
	kind Kind

	pattern *neighbours.Data
	target  *neighbours.Data

	patternNear *neighbours.NearData
	targetNear  *neighbours.NearData
	distance    int

	patternDerived *derived.Graphs
	targetDerived  *derived.Graphs
}

// NewNeighbours builds the adjacency propagator.
func NewNeighbours(pattern, target *neighbours.Data) *Reducer {
	return &Reducer{kind: KindNeighbours, pattern: pattern, target: target}
}

// NewDistances builds the bounded-distance propagator for one d >= 2.
func NewDistances(patternNear, targetNear *neighbours.NearData, distance int) *Reducer {
	if distance < 2 {
		panic("reduce: distance propagator requires d >= 2")
	}
	return &Reducer{
		kind:        KindDistances,
		patternNear: patternNear,
		targetNear:  targetNear,
		distance:    distance,
	}
}

// NewDerivedGraphs builds the path-count-invariant propagator.
func NewDerivedGraphs(patternDerived, targetDerived *derived.Graphs) *Reducer {
	return &Reducer{
		kind:           KindDerivedGraphs,
		patternDerived: patternDerived,
		targetDerived:  targetDerived,
	}
}

// Check reports whether the pair pv -> tv could ever be valid, judged in
// isolation from all other domains. A false answer holds in every node
// of every search.
func (r *Reducer) Check(asg core.Assignment) bool {
	switch r.kind {
	case KindNeighbours:
		return r.pattern.Degree(asg.PatternVertex) <= r.target.Degree(asg.TargetVertex)
	case KindDistances:
		for j := 1; j <= r.distance; j++ {
			if r.patternNear.NumVerticesUpToDistance(asg.PatternVertex, j) >
				r.targetNear.NumVerticesUpToDistance(asg.TargetVertex, j) {
				return false
			}
			if !neighbours.DegreeCountsDominated(
				r.patternNear.DegreeCountsUpToDistance(asg.PatternVertex, j),
				r.targetNear.DegreeCountsUpToDistance(asg.TargetVertex, j)) {
				return false
			}
		}
		return true
	case KindDerivedGraphs:
		return derived.Compatible(
			r.patternDerived.Data(asg.PatternVertex),
			r.targetDerived.Data(asg.TargetVertex))
	}
	panic("reduce: unknown reducer kind")
}

// Reduce shrinks the domains affected by the committed assignment. A
// Nogood return condemns only the current node. New singletons are
// recorded on the node and reported, the remaining work is still
// completed first.
func (r *Reducer) Reduce(asg core.Assignment, acc search.Accessor, scratch *bitset.Dense) search.ReductionResult {
	switch r.kind {
	case KindNeighbours:
		return r.reduceNeighbours(asg, acc, scratch)
	case KindDistances:
		return r.reduceDistances(asg, acc, scratch)
	case KindDerivedGraphs:
		return r.reduceDerived(asg, acc, scratch)
	}
	panic("reduce: unknown reducer kind")
}

func (r *Reducer) reduceNeighbours(asg core.Assignment, acc search.Accessor, scratch *bitset.Dense) search.ReductionResult {
	result := search.Success
	for _, nw := range r.pattern.NeighboursAndWeights(asg.PatternVertex) {
		other := nw.Vertex
		if skipBySymmetry(acc, asg.PatternVertex, other) {
			continue
		}
		scratch.ClearAll()
		for _, tw := range r.target.NeighboursAndWeights(asg.TargetVertex) {
			scratch.Set(int(tw.Vertex))
		}
		res := acc.IntersectDomain(other, scratch)
		if res.Result == search.Nogood {
			return search.Nogood
		}
		if res.Result == search.NewAssignments {
			result = search.NewAssignments
		}
	}
	return result
}

func (r *Reducer) reduceDistances(asg core.Assignment, acc search.Accessor, scratch *bitset.Dense) search.ReductionResult {
	result := search.Success
	affected := r.patternNear.VerticesAtExactDistance(asg.PatternVertex, r.distance)

	for v, ok := affected.FirstSet(); ok; v, ok = affected.NextSet(v) {
		other := core.Vertex(v)
		if skipBySymmetry(acc, asg.PatternVertex, other) {
			continue
		}
		// Grow the target ball one layer at a time; once the domain is
		// already inside it, intersecting cannot change anything.
		scratch.ClearAll()
		contained := false
		for j := 1; j <= r.distance; j++ {
			scratch.UnionWith(r.targetNear.VerticesAtExactDistance(asg.TargetVertex, j))
			if acc.Domain(other).IsSubsetOf(scratch) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		res := acc.IntersectDomain(other, scratch)
		if res.Result == search.Nogood {
			return search.Nogood
		}
		if res.Result == search.NewAssignments {
			result = search.NewAssignments
		}
	}
	return result
}

func (r *Reducer) reduceDerived(asg core.Assignment, acc search.Accessor, scratch *bitset.Dense) search.ReductionResult {
	result := search.Success
	pData := r.patternDerived.Data(asg.PatternVertex)
	tData := r.targetDerived.Data(asg.TargetVertex)

	reduceOne := func(patternReach []derived.NeighbourCount, targetReach []derived.NeighbourCount) search.ReductionResult {
		inner := search.Success
		for _, pc := range patternReach {
			other := pc.Vertex
			if skipBySymmetry(acc, asg.PatternVertex, other) {
				continue
			}
			scratch.ClearAll()
			for _, tc := range targetReach {
				if tc.Count >= pc.Count {
					scratch.Set(int(tc.Vertex))
				}
			}
			res := acc.IntersectDomain(other, scratch)
			if res.Result == search.Nogood {
				return search.Nogood
			}
			if res.Result == search.NewAssignments {
				inner = search.NewAssignments
			}
		}
		return inner
	}

	if res := reduceOne(pData.D2, tData.D2); res == search.Nogood {
		return search.Nogood
	} else if res == search.NewAssignments {
		result = search.NewAssignments
	}
	if res := reduceOne(pData.D3, tData.D3); res == search.Nogood {
		return search.Nogood
	} else if res == search.NewAssignments {
		result = search.NewAssignments
	}
	return result
}

// skipBySymmetry reports whether reducing other's domain may be skipped:
// once other is itself assigned, the symmetric reduction driven by
// other's own assignment covers the pair, unless other became a
// singleton later within the same node (ordered by vertex id, since
// assignment order inside a node is not tracked).
func skipBySymmetry(acc search.Accessor, pv, other core.Vertex) bool {
	if _, single := acc.Domain(other).Single(); !single {
		return false
	}
	if !acc.DomainCreatedInCurrentNode(other) {
		return true
	}
	return other < pv
}

// Wrapper pairs a Reducer with the count of node assignments it has
// already folded in, so a resumed reduction pass only processes the
// delta. Clear it whenever the search arrives at a node.
type Wrapper struct {
	reducer   *Reducer
	processed int
}

// NewWrapper wraps a reducer with a zeroed progress counter.
func NewWrapper(r *Reducer) *Wrapper { return &Wrapper{reducer: r} }

// Clear forgets all progress; call when arriving at a node.
func (w *Wrapper) Clear() { w.processed = 0 }

// Check forwards to the underlying reducer.
func (w *Wrapper) Check(asg core.Assignment) bool { return w.reducer.Check(asg) }

// Reduce processes the current node's assignments not yet seen by this
// reducer. It breaks off after any reduction that created further
// assignments, so the caller can fold those in cheaply first; a later
// call resumes from the next unprocessed assignment.
func (w *Wrapper) Reduce(acc search.Accessor, scratch *bitset.Dense) search.ReductionResult {
	result := search.Success
	for w.processed < len(acc.NewAssignments()) {
		asg := acc.NewAssignments()[w.processed]
		w.processed++
		result = w.reducer.Reduce(asg, acc, scratch)
		if result != search.Success {
			break
		}
	}
	return result
}
