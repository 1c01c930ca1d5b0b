package valuation

import "testing"

func TestPoolRankAndBase(t *testing.T) {
	pool := NewPool([]float64{100, 300, 0, 200, -5, 400})
	if pool.Len() != 4 {
		t.Fatalf("expected 4 positive projections, got %d", pool.Len())
	}

	cases := []struct {
		points     float64
		rank, base int
	}{
		{400, 1, 1000},
		{300, 2, 750},
		{100, 4, 250},
		// Between entries ranks with the next lower projection.
		{250, 3, 500},
		// Below every entry ranks past the end.
		{50, 5, 0},
	}
	for _, tc := range cases {
		if got := pool.Rank(tc.points); got != tc.rank {
			t.Fatalf("Rank(%v) = %d, want %d", tc.points, got, tc.rank)
		}
		if got := pool.Base(tc.points); got != tc.base {
			t.Fatalf("Base(%v) = %d, want %d", tc.points, got, tc.base)
		}
	}
}

func TestPoolBaseEdges(t *testing.T) {
	if got := NewPool(nil).Base(100); got != 0 {
		t.Fatalf("expected 0 from empty pool, got %d", got)
	}
	pool := NewPool([]float64{10})
	cases := map[float64]int{0: 0, -1: 0, 10: 1000, 99: 1000}
	for points, want := range cases {
		if got := pool.Base(points); got != want {
			t.Fatalf("Base(%v) = %d, want %d", points, got, want)
		}
	}
}

func TestPoolFromMap(t *testing.T) {
	pool := PoolFromMap(map[string]float64{"a": 10, "b": 20, "c": 0})
	if pool.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", pool.Len())
	}
	if got := pool.Base(10); got != 500 {
		t.Fatalf("expected base 500, got %d", got)
	}
}
