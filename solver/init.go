package solver

import (
	"github.com/katalvlaran/wsmatch/bitset"
	"github.com/katalvlaran/wsmatch/core"
	"github.com/katalvlaran/wsmatch/derived"
	"github.com/katalvlaran/wsmatch/neighbours"
)

// initialDomains builds one candidate set per pattern vertex by layering
// cheap compatibility filters: degree, neighbour-degree dominance,
// vertex counts within every distance up to maxDistance, and the
// derived-graph invariants. Filters only ever exclude targets that no
// monomorphism could use, so the domains stay sound.
func initialDomains(
	pattern, target *neighbours.Data,
	pNear, tNear *neighbours.NearData,
	pDerived, tDerived *derived.Graphs,
	maxDistance int,
) []*bitset.Dense {
	numPV := pattern.NumVertices()
	numTV := target.NumVertices()
	domains := make([]*bitset.Dense, numPV)

	for i := 0; i < numPV; i++ {
		pv := core.Vertex(i)
		domain := bitset.New(numTV)
		pDegree := pattern.Degree(pv)
		pNbrDegrees := pNear.DegreeCountsAtExactDistance(pv, 1)

		for j := 0; j < numTV; j++ {
			tv := core.Vertex(j)
			if pDegree > target.Degree(tv) {
				continue
			}
			if !neighbours.DegreeCountsDominated(pNbrDegrees,
				tNear.DegreeCountsAtExactDistance(tv, 1)) {
				continue
			}
			counts := true
			for d := 2; d <= maxDistance; d++ {
				if pNear.NumVerticesUpToDistance(pv, d) >
					tNear.NumVerticesUpToDistance(tv, d) {
					counts = false
					break
				}
			}
			if !counts {
				continue
			}
			if !derived.Compatible(pDerived.Data(pv), tDerived.Data(tv)) {
				continue
			}
			domain.Set(j)
		}
		domains[i] = domain
	}
	return domains
}
