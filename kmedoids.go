package simcluster

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// KMedoids performs PAM-style medoid partitioning for a fixed k.
//
// It draws k distinct medoids from rng (nil means a time-seeded source),
// then alternates nearest-medoid assignment and exhaustive medoid updates
// until assignments stop changing or maxIterations update rounds have run
// (maxIterations <= 0 means 100). Medoids are kept sorted ascending between
// rounds, assignment ties go to the first medoid in iteration order, and a
// cluster that loses all members keeps its previous medoid.
//
// Returns ErrInvalidK when k is outside [1, n]. An empty matrix yields an
// empty result without error.
func KMedoids(dist [][]float64, k, maxIterations int, rng *rand.Rand) (*Result, error) {
	n := len(dist)
	if n == 0 {
		return &Result{Kind: KindMedoidPartition, Assignments: []int{}, Medoids: []int{}}, nil
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d with n=%d", ErrInvalidK, k, n)
	}
	if maxIterations <= 0 {
		maxIterations = 100
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	medoids := rng.Perm(n)[:k]
	sort.Ints(medoids)

	var assignments, prev []int
	iterations := 0
	for {
		assignments = assignToMedoids(dist, medoids)
		if prev != nil && equalInts(assignments, prev) {
			break
		}
		if iterations >= maxIterations {
			break
		}
		iterations++
		prev = assignments

		medoids = updateMedoids(dist, assignments, medoids)
		sort.Ints(medoids)
	}

	return &Result{
		Kind:        KindMedoidPartition,
		Assignments: assignments,
		Medoids:     medoids,
		Iterations:  iterations,
	}, nil
}

// assignToMedoids assigns each point to its nearest medoid. Ties keep the
// first medoid in iteration order (medoids are sorted, so the lowest index).
func assignToMedoids(dist [][]float64, medoids []int) []int {
	assignments := make([]int, len(dist))
	for i := range dist {
		best := 0
		for c := 1; c < len(medoids); c++ {
			if dist[i][medoids[c]] < dist[i][medoids[best]] {
				best = c
			}
		}
		assignments[i] = best
	}
	return assignments
}

// updateMedoids recomputes each cluster's medoid as the member minimizing
// total distance to the other members, by exhaustive search. Empty clusters
// retain their previous medoid.
func updateMedoids(dist [][]float64, assignments, medoids []int) []int {
	next := make([]int, len(medoids))
	copy(next, medoids)

	for c := range medoids {
		var members []int
		for i, a := range assignments {
			if a == c {
				members = append(members, i)
			}
		}
		if len(members) == 0 {
			continue
		}

		best := members[0]
		bestTotal := totalDistance(dist, members[0], members)
		for _, m := range members[1:] {
			if total := totalDistance(dist, m, members); total < bestTotal {
				best = m
				bestTotal = total
			}
		}
		next[c] = best
	}
	return next
}

// totalDistance sums the distance from point p to every member except itself.
func totalDistance(dist [][]float64, p int, members []int) float64 {
	var total float64
	for _, m := range members {
		if m != p {
			total += dist[p][m]
		}
	}
	return total
}

// equalInts reports whether a and b have identical contents.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
