package simcluster

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Silhouette computes the mean silhouette score of a partition over a
// distance matrix, in [-1, 1]. Higher is better: cohesive, well-separated
// clusters score near 1.
//
// For each non-noise point i, a(i) is the mean distance to the other members
// of its cluster and b(i) the smallest mean distance to any other non-noise
// cluster. The point score is (b-a)/max(a,b). Points with no defined score
// are skipped: members of singleton clusters (no a), points with no other
// cluster to compare against (no b), and points where both means are zero.
// If no point has a defined score the result is 0.
func Silhouette(dist [][]float64, assignments []int) float64 {
	members := clusterMembers(assignments)

	var scores []float64
	for i, c := range assignments {
		if c == Noise {
			continue
		}

		own := distancesTo(dist, i, members[c])
		if len(own) == 0 {
			continue
		}
		a := stat.Mean(own, nil)

		b := math.Inf(1)
		for other, pts := range members {
			if other == c {
				continue
			}
			if d := stat.Mean(distancesTo(dist, i, pts), nil); d < b {
				b = d
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		denom := max(a, b)
		if denom == 0 {
			continue
		}
		scores = append(scores, (b-a)/denom)
	}

	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
}

// clusterMembers groups point indices by cluster ID, excluding noise.
func clusterMembers(assignments []int) map[int][]int {
	members := make(map[int][]int)
	for i, c := range assignments {
		if c != Noise {
			members[c] = append(members[c], i)
		}
	}
	return members
}

// distancesTo collects the distances from point i to each point in pts,
// excluding i itself.
func distancesTo(dist [][]float64, i int, pts []int) []float64 {
	ds := make([]float64, 0, len(pts))
	for _, p := range pts {
		if p != i {
			ds = append(ds, dist[i][p])
		}
	}
	return ds
}
