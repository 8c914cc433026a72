// Package simcluster clusters items using only a precomputed pairwise
// similarity or distance matrix. It never sees the original items, never
// computes similarity itself, and performs no I/O: every entry point is a
// pure, synchronous function over a caller-owned n×n matrix.
//
// Three interchangeable algorithms produce a flat partition:
//
//   - DBSCAN: density-based clustering with explicit noise labels (-1)
//   - HAC: agglomerative hierarchical clustering down to k clusters
//   - KMedoids: PAM-style medoid partitioning for a fixed k
//     (modes "mean" and "medoid" are aliases for the same partitioner)
//
// Basic usage with explicit parameters:
//
//	cfg := simcluster.DefaultConfig()
//	cfg.Mode = simcluster.ModeHAC
//	cfg.K = 3
//	result, err := simcluster.Cluster(dist, cfg)
//	// result.Assignments[i] is the cluster ID for point i (-1 = noise)
//
// # Automatic tuning
//
// AutoCluster accepts a similarity matrix, converts it to distances, fills in
// missing hyperparameters (eps/minPts for DBSCAN via the k-distance elbow
// heuristic, k for the other modes by maximizing silhouette score over
// candidate values), and attaches quality metrics to the result:
//
//	cfg := simcluster.DefaultConfig()
//	cfg.Mode = simcluster.ModeHAC // K omitted: searched automatically
//	scored, err := simcluster.AutoCluster(similarity, cfg)
//	// scored.K, scored.Silhouette, scored.Cost
//
// The quality metrics (Silhouette, ClusteringCost) and the eps estimator
// (EstimateEps, KDistances) are exported standalone for callers that need to
// score an externally computed partition.
package simcluster
