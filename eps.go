package simcluster

import "sort"

// fallbackEps is returned by EstimateEps when the matrix has too few points
// to build a k-distance graph for the requested minPts.
const fallbackEps = 0.5

// gapTolerance treats near-equal k-distance gaps as equal so the earliest
// elbow wins.
const gapTolerance = 1e-9

// KDistances computes each point's distance to its (minPts-1)-th nearest
// other point and returns the values sorted ascending. This is the
// "k-distance graph" DBSCAN parameter selection is based on.
//
// Returns an empty slice when minPts < 2 or minPts > n, where no such
// neighbor exists.
func KDistances(dist [][]float64, minPts int) []float64 {
	n := len(dist)
	k := minPts - 1
	if k < 1 || k > n-1 {
		return nil
	}

	kd := make([]float64, 0, n)
	neighbors := make([]float64, n-1)
	for i := 0; i < n; i++ {
		idx := 0
		for j := 0; j < n; j++ {
			if j != i {
				neighbors[idx] = dist[i][j]
				idx++
			}
		}
		sort.Float64s(neighbors)
		kd = append(kd, neighbors[k-1])
	}

	sort.Float64s(kd)
	return kd
}

// EstimateEps estimates a DBSCAN eps for the given minPts using the elbow of
// the sorted k-distance graph: the first index whose gap to the next value is
// the strict maximum (near-equal gaps count as equal, preferring the earliest
// elbow). The k-distance just above that jump is returned.
//
// A uniform matrix has no jump and yields the common k-distance. Too few
// points for minPts yields the fallback 0.5.
func EstimateEps(dist [][]float64, minPts int) float64 {
	kd := KDistances(dist, minPts)
	if len(kd) == 0 {
		return fallbackEps
	}

	elbow := 0
	bestGap := 0.0
	for i := 0; i+1 < len(kd); i++ {
		if gap := kd[i+1] - kd[i]; gap > bestGap+gapTolerance {
			bestGap = gap
			elbow = i + 1
		}
	}
	return kd[elbow]
}
