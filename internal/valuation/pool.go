package valuation

import (
	"math"
	"sort"
)

// Scale is the value assigned to the top-ranked projection in a pool.
const Scale = 1000

// Pool ranks projections against every positive projection in a request.
type Pool struct {
	sorted []float64
}

// NewPool builds a descending pool from the positive entries of points.
func NewPool(points []float64) Pool {
	sorted := make([]float64, 0, len(points))
	for _, p := range points {
		if p > 0 {
			sorted = append(sorted, p)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return Pool{sorted: sorted}
}

// PoolFromMap builds a pool from an id-keyed projection map.
func PoolFromMap(projections map[string]float64) Pool {
	points := make([]float64, 0, len(projections))
	for _, p := range projections {
		points = append(points, p)
	}
	return NewPool(points)
}

// Len returns the number of ranked projections.
func (p Pool) Len() int { return len(p.sorted) }

// Rank returns the 1-based position of the first pool entry at or below points.
// Points below every entry rank after the last one.
func (p Pool) Rank(points float64) int {
	i := sort.Search(len(p.sorted), func(i int) bool { return p.sorted[i] <= points })
	return i + 1
}

// Base converts points to a percentile value in [0, Scale].
func (p Pool) Base(points float64) int {
	n := len(p.sorted)
	if points <= 0 || n == 0 {
		return 0
	}
	rank := p.Rank(points)
	return int(math.Round(float64(n-rank+1) / float64(n) * Scale))
}
