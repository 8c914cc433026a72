package simcluster

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// kSearchMax caps the candidate cluster counts AutoCluster tries when K is
// absent: the search range is [2, min(n-2, kSearchMax)].
const kSearchMax = 9

// AutoCluster clusters a similarity matrix, filling in absent
// hyperparameters and attaching quality metrics to the result.
//
// The matrix is first converted to distances via NormalizeSimilarityMatrix
// (honoring cfg.SkipNormalization). For dbscan, an absent MinPts defaults to
// clamp(4, 2, n-1) and an absent Eps is estimated from the k-distance elbow.
// For the other modes an absent K is searched over [2, min(n-2, 9)],
// running the algorithm once per candidate and keeping the run with the
// highest silhouette score; ties keep the smallest k. Candidate runs are
// spread over cfg.Workers goroutines and compared in ascending-k order after
// all complete, so the outcome does not depend on the worker count.
//
// The returned ScoredResult carries the distinct non-noise cluster count,
// the clustering cost (0 for non-medoid results) and the silhouette score.
func AutoCluster(similarity [][]float64, cfg Config) (*ScoredResult, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := validateMatrix(similarity); err != nil {
		return nil, err
	}

	dist := NormalizeSimilarityMatrix(similarity, cfg.SkipNormalization)
	n := len(dist)

	if cfg.Mode == ModeDBSCAN {
		minPts := cfg.MinPts
		if minPts == 0 {
			minPts = clamp(4, 2, n-1)
		}
		eps := cfg.Eps
		if eps == 0 {
			eps = EstimateEps(dist, minPts)
		}
		return score(dist, DBSCAN(dist, eps, minPts), cfg.Diagnostics), nil
	}

	if cfg.K > 0 {
		res, err := runPartitioner(dist, cfg.K, cfg, cfg.Rand)
		if err != nil {
			return nil, err
		}
		return score(dist, res, cfg.Diagnostics), nil
	}

	return searchK(dist, cfg)
}

// searchK runs cfg.Mode once per candidate k in [2, min(n-2, 9)] and keeps
// the run with the highest silhouette score, preferring the smallest k on
// ties.
func searchK(dist [][]float64, cfg Config) (*ScoredResult, error) {
	n := len(dist)
	hi := min(n-2, kSearchMax)
	if hi < 2 {
		return nil, fmt.Errorf("%w: cannot search k with n=%d; set K explicitly", ErrInvalidK, n)
	}

	// Derive one random source per candidate up front: medoid runs must not
	// share cfg.Rand across goroutines, and sequential derivation keeps the
	// search deterministic under a seeded source.
	parent := cfg.Rand
	if parent == nil {
		parent = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var ks []int
	var rngs []*rand.Rand
	for k := 2; k <= hi; k++ {
		ks = append(ks, k)
		rngs = append(rngs, rand.New(rand.NewSource(parent.Int63())))
	}

	type run struct {
		res *Result
		sil float64
		err error
	}
	runs := make([]run, len(ks))

	runRange := func(start, end int) {
		for i := start; i < end; i++ {
			res, err := runPartitioner(dist, ks[i], cfg, rngs[i])
			if err != nil {
				runs[i] = run{err: err}
				continue
			}
			runs[i] = run{res: res, sil: Silhouette(dist, res.Assignments)}
		}
	}

	if workers := min(cfg.Workers, len(ks)); workers <= 1 {
		runRange(0, len(ks))
	} else {
		// Split candidates across workers; ranges don't overlap, so writes
		// into runs need no synchronization.
		var wg sync.WaitGroup
		perWorker := (len(ks) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * perWorker
			end := min(start+perWorker, len(ks))
			if start >= len(ks) {
				break
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				runRange(start, end)
			}(start, end)
		}
		wg.Wait()
	}

	best := -1
	for i := range runs {
		if runs[i].err != nil {
			return nil, runs[i].err
		}
		if best < 0 || runs[i].sil > runs[best].sil {
			best = i
		}
	}

	scored := &ScoredResult{
		Result:     *runs[best].res,
		K:          countClusters(runs[best].res.Assignments),
		Cost:       ClusteringCost(dist, runs[best].res, cfg.Diagnostics),
		Silhouette: runs[best].sil,
	}
	return scored, nil
}

// runPartitioner runs the non-DBSCAN algorithm selected by cfg.Mode with an
// explicit k and random source.
func runPartitioner(dist [][]float64, k int, cfg Config, rng *rand.Rand) (*Result, error) {
	if cfg.Mode == ModeHAC {
		return HAC(dist, k, cfg.Linkage), nil
	}
	return KMedoids(dist, k, cfg.MaxIterations, rng)
}

// score attaches quality metrics to a result.
func score(dist [][]float64, res *Result, onDiag DiagnosticHandler) *ScoredResult {
	return &ScoredResult{
		Result:     *res,
		K:          countClusters(res.Assignments),
		Cost:       ClusteringCost(dist, res, onDiag),
		Silhouette: Silhouette(dist, res.Assignments),
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
