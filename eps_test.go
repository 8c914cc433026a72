package simcluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairMatrix builds a 6-point matrix of three isolated pairs with the given
// within-pair distances; everything else is far.
func pairMatrix(d01, d23, d45, far float64) [][]float64 {
	dist := make([][]float64, 6)
	for i := range dist {
		dist[i] = make([]float64, 6)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = far
			}
		}
	}
	dist[0][1], dist[1][0] = d01, d01
	dist[2][3], dist[3][2] = d23, d23
	dist[4][5], dist[5][4] = d45, d45
	return dist
}

func TestKDistances(t *testing.T) {
	dist := pairMatrix(0.1, 0.15, 0.6, 0.9)

	// minPts=2: each point's nearest other point, sorted ascending.
	got := KDistances(dist, 2)
	assert.InDeltaSlice(t, []float64{0.1, 0.1, 0.15, 0.15, 0.6, 0.6}, got, 1e-12)
}

func TestKDistancesDegenerate(t *testing.T) {
	dist := twoGroupMatrix(2, 2, 0.1, 0.9)

	assert.Empty(t, KDistances(dist, 1), "no 0th nearest neighbor")
	assert.Empty(t, KDistances(dist, 6), "more neighbors requested than exist")
	assert.Empty(t, KDistances([][]float64{{0}}, 2))
	assert.Empty(t, KDistances([][]float64{}, 2))
}

func TestEstimateEpsPicksValueAfterLargestGap(t *testing.T) {
	dist := pairMatrix(0.1, 0.15, 0.6, 0.9)

	// Sorted k-distances are [0.1 0.1 0.15 0.15 0.6 0.6]; the largest gap
	// (0.45) sits before 0.6, so the estimate is the value just above it.
	assert.InDelta(t, 0.6, EstimateEps(dist, 2), 1e-12)
}

func TestEstimateEpsUniformMatrix(t *testing.T) {
	dist := twoGroupMatrix(2, 2, 0.3, 0.3)
	// No gap anywhere: the elbow stays at index 0, the common k-distance.
	assert.InDelta(t, 0.3, EstimateEps(dist, 2), 1e-12)
}

func TestEstimateEpsPrefersEarliestOfEqualGaps(t *testing.T) {
	// k-distances [0.1 0.1 0.3 0.3 0.5 0.5] have two equal 0.2 gaps; the
	// earliest wins, yielding 0.3 rather than 0.5.
	dist := pairMatrix(0.1, 0.3, 0.5, 0.9)
	assert.InDelta(t, 0.3, EstimateEps(dist, 2), 1e-12)
}

func TestEstimateEpsFallback(t *testing.T) {
	require.Equal(t, fallbackEps, EstimateEps([][]float64{{0}}, 4))
	require.Equal(t, fallbackEps, EstimateEps([][]float64{}, 2))
}
