package simcluster

import "math"

// HAC performs agglomerative hierarchical clustering, merging the closest
// pair of clusters under the given linkage until k clusters remain.
//
// Ties for the minimal pair go to the first pair found scanning
// outer-then-inner by ascending position. Merging concatenates the second
// cluster's members onto the first and drops the second from the active list.
// If no pair has a distance below +Inf the loop stops early, which can leave
// more than k clusters. k <= 0 behaves like k = 1; k >= n performs no merges.
func HAC(dist [][]float64, k int, linkage Linkage) *Result {
	n := len(dist)
	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > k && len(clusters) > 1 {
		bestA, bestB := -1, -1
		best := math.Inf(1)
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				d := clusterDistance(dist, clusters[i], clusters[j], linkage)
				if d < best {
					best = d
					bestA, bestB = i, j
				}
			}
		}
		if bestA < 0 {
			break
		}

		clusters[bestA] = append(clusters[bestA], clusters[bestB]...)
		clusters = append(clusters[:bestB], clusters[bestB+1:]...)
	}

	assignments := make([]int, n)
	for id, members := range clusters {
		for _, i := range members {
			assignments[i] = id
		}
	}
	return &Result{Kind: KindPartition, Assignments: assignments}
}
