package trades

import (
	"math"
	"slices"
	"testing"

	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
)

func TestOneForOneOnlyUserGains(t *testing.T) {
	user := team("me", 100, 200, 300, 400, 500)
	other := team("them", 150, 250, 350, 450, 550)

	got := OneForOne(&user, &other)
	if len(got) != 15 {
		t.Fatalf("expected 15 candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Type != domain.OneForOne {
			t.Fatalf("expected 1-for-1, got %s", c.Type)
		}
		if c.Received <= c.Given {
			t.Fatalf("expected user gain, got given %d received %d", c.Given, c.Received)
		}
		if math.Abs(Fairness(c.Given, c.Received)-c.Fairness) > 1e-9 {
			t.Fatalf("fairness mismatch for %+v", c)
		}
	}
	// Index order: first user player against first other player.
	if got[0].Give[0].PlayerID != "me-0" || got[0].Receive[0].PlayerID != "them-0" {
		t.Fatalf("expected me-0 for them-0 first, got %s for %s", got[0].Give[0].PlayerID, got[0].Receive[0].PlayerID)
	}
}

func TestOneForOneSkipsZeroValueAndEvenSwaps(t *testing.T) {
	user := team("me", 0, 100)
	other := team("them", 0, 100, 90)
	if got := OneForOne(&user, &other); len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestTwoForTwoLimitAndOrder(t *testing.T) {
	user := team("me", 100, 200, 300, 400, 500)
	other := team("them", 150, 250, 350, 450, 550)

	got := TwoForTwo(&user, &other)
	if len(got) != TwoForTwoLimit {
		t.Fatalf("expected %d candidates, got %d", TwoForTwoLimit, len(got))
	}
	first := got[0]
	if !slices.Equal(ids(first.Give), []string{"me-0", "me-1"}) || !slices.Equal(ids(first.Receive), []string{"them-0", "them-1"}) {
		t.Fatalf("unexpected first candidate %v for %v", ids(first.Give), ids(first.Receive))
	}
	for _, c := range got {
		if c.Fairness < TwoForTwoMinFairness {
			t.Fatalf("candidate below gate: %v", c.Fairness)
		}
		if c.Received <= c.Given {
			t.Fatalf("expected user gain, got given %d received %d", c.Given, c.Received)
		}
	}
}

func TestTwoForTwoFairnessGate(t *testing.T) {
	user := team("me", 10, 10)
	other := team("them", 100, 100)
	// 20 vs 200 is a gain but fails the 0.60 gate.
	if got := TwoForTwo(&user, &other); len(got) != 0 {
		t.Fatalf("expected gate to reject, got %d", len(got))
	}
}

func TestThreeForThreeAttemptCapCountsRejected(t *testing.T) {
	user := team("me", 10, 10, 10)
	// Triples starting at index 0 or 1 include a 1-point player and lose value for the user.
	// Those make up the first 64 combinations, so the 50-attempt cap exhausts on rejections.
	other := team("them", 1, 1, 12, 12, 12, 12, 12, 12, 12, 12)
	if got := ThreeForThree(&user, &other); len(got) != 0 {
		t.Fatalf("expected attempt cap to exhaust, got %d", len(got))
	}
}

func TestThreeForThreeLimit(t *testing.T) {
	user := team("me", 10, 10, 10)
	other := team("them", 12, 12, 12, 12, 12, 12, 12, 12, 1, 1)
	got := ThreeForThree(&user, &other)
	if len(got) != ThreeForThreeLimit {
		t.Fatalf("expected %d candidates, got %d", ThreeForThreeLimit, len(got))
	}
	for _, c := range got {
		if c.Type != domain.ThreeForThree {
			t.Fatalf("expected 3-for-3, got %s", c.Type)
		}
		if math.Abs(c.Fairness-30.0/36.0) > 1e-9 {
			t.Fatalf("expected fairness 30/36, got %v", c.Fairness)
		}
	}
}

func TestThreeForThreeFairnessGate(t *testing.T) {
	user := team("me", 10, 10, 10)
	other := team("them", 100, 100, 100)
	if got := ThreeForThree(&user, &other); len(got) != 0 {
		t.Fatalf("expected gate to reject, got %d", len(got))
	}
}

func ids(assets []domain.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.PlayerID)
	}
	return out
}
