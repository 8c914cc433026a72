package simcluster

import "fmt"

// ClusteringCost sums the distance from each non-noise point to its cluster's
// medoid. It is defined only for medoid partitions; any other result costs 0.
//
// Points whose cluster ID or medoid index is out of range are skipped: each
// emits a Diagnostic through onDiag (nil discards them) and the sum
// continues. Inconsistent data is never fatal here.
func ClusteringCost(dist [][]float64, res *Result, onDiag DiagnosticHandler) float64 {
	if res == nil || res.Kind != KindMedoidPartition {
		return 0
	}

	n := len(dist)
	var cost float64
	for i, c := range res.Assignments {
		if c == Noise {
			continue
		}
		if c < 0 || c >= len(res.Medoids) {
			onDiag.emit(Diagnostic{
				Op:      "clustering_cost",
				Message: fmt.Sprintf("point %d assigned to cluster %d with no medoid", i, c),
				Point:   i,
				Cluster: c,
			})
			continue
		}
		m := res.Medoids[c]
		if m < 0 || m >= n {
			onDiag.emit(Diagnostic{
				Op:      "clustering_cost",
				Message: fmt.Sprintf("cluster %d has medoid index %d outside the matrix", c, m),
				Point:   i,
				Cluster: c,
			})
			continue
		}
		cost += dist[i][m]
	}
	return cost
}
