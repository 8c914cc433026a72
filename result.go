package simcluster

// Noise is the assignment value for points DBSCAN could not attach to any
// density-connected cluster.
const Noise = -1

// unclassified marks points DBSCAN has not visited yet. It exists only in
// DBSCAN's working state and never appears in a returned Result.
const unclassified = -2

// ResultKind discriminates the two result variants.
type ResultKind string

const (
	// KindPartition is a plain partition: Assignments only. Produced by
	// DBSCAN and HAC.
	KindPartition ResultKind = "partition"

	// KindMedoidPartition additionally carries Medoids and Iterations.
	// Produced by KMedoids.
	KindMedoidPartition ResultKind = "medoid_partition"
)

// Result is the output of a single clustering run.
type Result struct {
	// Kind identifies the variant. Medoids and Iterations are only
	// meaningful when Kind is KindMedoidPartition.
	Kind ResultKind

	// Assignments maps each point index to a cluster ID in [0, k), or
	// Noise (-1) for DBSCAN noise points. Always length n.
	Assignments []int

	// Medoids holds one representative point index per cluster, sorted
	// ascending. Medoids[c] is the medoid of cluster c.
	Medoids []int

	// Iterations is the number of medoid update rounds performed before
	// convergence or the iteration cap.
	Iterations int
}

// ScoredResult is a Result extended with quality metrics, as returned by
// AutoCluster.
type ScoredResult struct {
	Result

	// K is the number of distinct non-noise clusters in Assignments.
	K int

	// Cost is the sum of point-to-medoid distances over non-noise points.
	// Zero for non-medoid results.
	Cost float64

	// Silhouette is the mean silhouette score of the partition, in [-1, 1].
	Silhouette float64
}

// countClusters returns the number of distinct non-noise cluster IDs.
func countClusters(assignments []int) int {
	seen := make(map[int]bool)
	for _, a := range assignments {
		if a >= 0 {
			seen[a] = true
		}
	}
	return len(seen)
}
