package simcluster

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeCase_EmptyMatrix(t *testing.T) {
	empty := [][]float64{}

	for _, mode := range []Mode{ModeDBSCAN, ModeHAC, ModeMean, ModeMedoid} {
		cfg := DefaultConfig()
		cfg.Mode = mode
		cfg.K = 1
		cfg.Eps = 0.5
		cfg.MinPts = 2

		res, err := Cluster(empty, cfg)
		require.NoError(t, err, "mode %s", mode)
		assert.Empty(t, res.Assignments, "mode %s", mode)
	}
}

func TestEdgeCase_SinglePoint(t *testing.T) {
	dist := [][]float64{{0}}

	res := DBSCAN(dist, 0.5, 2)
	assert.Equal(t, []int{Noise}, res.Assignments)

	res = HAC(dist, 1, AverageLinkage)
	assert.Equal(t, []int{0}, res.Assignments)

	res, err := KMedoids(dist, 1, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Assignments)
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	// Zero distance everywhere: one big cluster for every algorithm, and
	// every metric stays finite.
	n := 6
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	res := DBSCAN(dist, 0.5, 2)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, res.Assignments)

	res = HAC(dist, 1, AverageLinkage)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, res.Assignments)

	kres, err := KMedoids(dist, 2, 100, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Len(t, kres.Assignments, n)
	assert.False(t, math.IsNaN(Silhouette(dist, kres.Assignments)))
	assert.Zero(t, ClusteringCost(dist, kres, nil))
}

func TestEdgeCase_AutoClusterAllEqualSimilarity(t *testing.T) {
	// Degenerate similarity: normalization collapses to an all-zero
	// distance matrix and clustering still returns a well-formed result.
	n := 6
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		for j := range sim[i] {
			sim[i][j] = 3.7
		}
	}

	cfg := DefaultConfig()
	cfg.Mode = ModeHAC
	cfg.K = 2

	scored, err := AutoCluster(sim, cfg)
	require.NoError(t, err)
	require.Len(t, scored.Assignments, n)
	assert.False(t, math.IsNaN(scored.Silhouette))
}

func TestEdgeCase_DBSCANEpsZero(t *testing.T) {
	// eps=0 only reaches points at distance exactly zero.
	dist := [][]float64{
		{0, 0, 0.5},
		{0, 0, 0.5},
		{0.5, 0.5, 0},
	}
	res := DBSCAN(dist, 0, 1)
	assert.Equal(t, []int{0, 0, Noise}, res.Assignments)
}
