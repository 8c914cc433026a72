package simcluster

// regionQuery returns the indices of all points other than p whose distance
// to p is at most eps (inclusive boundary), in ascending index order.
func regionQuery(dist [][]float64, p int, eps float64) []int {
	var neighbors []int
	for i := range dist {
		if i != p && dist[p][i] <= eps {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}
