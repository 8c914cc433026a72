package simcluster

import "gonum.org/v1/gonum/floats"

// NormalizeSimilarityMatrix converts a similarity matrix (high = close) into
// a distance matrix (low = close).
//
// If skip is true, or every entry already lies in [0,1], each distance is
// simply 1 - similarity. Otherwise entries are min-max rescaled so the
// highest similarity maps to distance 0 and the lowest to 1. When all entries
// are equal there is no information to separate points and the result is an
// all-zero matrix.
//
// The input is never modified; the returned matrix is freshly allocated.
func NormalizeSimilarityMatrix(similarity [][]float64, skip bool) [][]float64 {
	n := len(similarity)
	dist := make([][]float64, n)

	if skip || isUnitBounded(similarity) {
		for i, row := range similarity {
			dist[i] = make([]float64, len(row))
			for j, v := range row {
				dist[i][j] = 1 - v
			}
		}
		return dist
	}

	lo, hi := matrixRange(similarity)
	span := hi - lo
	for i, row := range similarity {
		dist[i] = make([]float64, len(row))
		if span == 0 {
			continue
		}
		for j, v := range row {
			dist[i][j] = (hi - v) / span
		}
	}
	return dist
}

// isUnitBounded reports whether every entry of m lies in [0, 1].
func isUnitBounded(m [][]float64) bool {
	for _, row := range m {
		for _, v := range row {
			if v < 0 || v > 1 {
				return false
			}
		}
	}
	return true
}

// matrixRange returns the minimum and maximum entry over all rows of m.
// Empty rows are skipped; an entirely empty matrix yields (0, 0).
func matrixRange(m [][]float64) (lo, hi float64) {
	first := true
	for _, row := range m {
		if len(row) == 0 {
			continue
		}
		rowLo, rowHi := floats.Min(row), floats.Max(row)
		if first {
			lo, hi = rowLo, rowHi
			first = false
			continue
		}
		lo = min(lo, rowLo)
		hi = max(hi, rowHi)
	}
	return lo, hi
}
