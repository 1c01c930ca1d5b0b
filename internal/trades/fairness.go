package trades

import domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"

// Tier thresholds, inclusive lower bounds.
const (
	VeryStrictThreshold   = 0.80
	SomewhatFairThreshold = 0.70
)

// Fairness returns min/max of the two side totals. It is 0 when either side is empty of value.
func Fairness(given, received int) float64 {
	lo, hi := given, received
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo <= 0 {
		return 0
	}
	return float64(lo) / float64(hi)
}

// TierFor labels a fairness score.
func TierFor(score float64) domain.FairnessTier {
	switch {
	case score >= VeryStrictThreshold:
		return domain.VeryStrict
	case score >= SomewhatFairThreshold:
		return domain.SomewhatFair
	default:
		return domain.Fleece
	}
}
