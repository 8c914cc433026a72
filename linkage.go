package simcluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// clusterDistance computes the linkage distance between clusters a and b over
// all member pairs.
//
// When either cluster is empty there are no pairs, and the conventional
// values fall out of the reduction: +Inf for single (min), -Inf for complete
// (max), NaN for average (0/0). HAC's merge selection relies on these exact
// values to reject empty pairings.
func clusterDistance(dist [][]float64, a, b []int, linkage Linkage) float64 {
	pairs := make([]float64, 0, len(a)*len(b))
	for _, i := range a {
		for _, j := range b {
			pairs = append(pairs, dist[i][j])
		}
	}

	switch linkage {
	case SingleLinkage:
		if len(pairs) == 0 {
			return math.Inf(1)
		}
		return floats.Min(pairs)
	case CompleteLinkage:
		if len(pairs) == 0 {
			return math.Inf(-1)
		}
		return floats.Max(pairs)
	default:
		// AverageLinkage: stat.Mean of zero samples is 0/0 = NaN.
		return stat.Mean(pairs, nil)
	}
}
