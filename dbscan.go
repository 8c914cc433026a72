package simcluster

// DBSCAN performs density-based clustering on a distance matrix and returns a
// partition with explicit noise labels.
//
// A point seeds a cluster when it has at least minPts neighbors within eps,
// itself excluded, so a core point needs minPts other points in range. This
// threshold is one stricter than the textbook definition, which counts the
// point itself; auto-tuned eps values are calibrated against this behavior.
//
// Clusters are numbered 0, 1, 2, ... in order of discovery. Points reachable
// from no core point are labeled Noise (-1).
func DBSCAN(dist [][]float64, eps float64, minPts int) *Result {
	n := len(dist)
	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = unclassified
	}

	clusterID := 0
	for p := 0; p < n; p++ {
		if assignments[p] != unclassified {
			continue
		}

		neighbors := regionQuery(dist, p, eps)
		if len(neighbors) < minPts {
			assignments[p] = Noise
			continue
		}

		assignments[p] = clusterID
		expandCluster(dist, assignments, neighbors, clusterID, eps, minPts)
		clusterID++
	}

	return &Result{Kind: KindPartition, Assignments: assignments}
}

// expandCluster grows cluster clusterID from an initial seed set by density
// reachability. Noise points in range are promoted to border members but not
// expanded; unclassified points are labeled and, if they are themselves core
// points, their neighbors join the frontier (duplicates suppressed).
func expandCluster(dist [][]float64, assignments, seeds []int, clusterID int, eps float64, minPts int) {
	frontier := make([]int, 0, len(seeds))
	queued := make(map[int]bool, len(seeds))
	for _, q := range seeds {
		frontier = append(frontier, q)
		queued[q] = true
	}

	for len(frontier) > 0 {
		q := frontier[0]
		frontier = frontier[1:]

		if assignments[q] == Noise {
			assignments[q] = clusterID
		}
		if assignments[q] != unclassified {
			continue
		}
		assignments[q] = clusterID

		qNeighbors := regionQuery(dist, q, eps)
		if len(qNeighbors) < minPts {
			continue
		}
		for _, r := range qNeighbors {
			if !queued[r] {
				frontier = append(frontier, r)
				queued[r] = true
			}
		}
	}
}
