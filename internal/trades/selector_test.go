package trades

import (
	"slices"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
)

func TestSplitCounts(t *testing.T) {
	cases := []struct{ max, simple, multi int }{
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 1},
		{4, 2, 2},
		{5, 3, 2},
		{10, 5, 5},
		{11, 6, 5},
		{50, 25, 25},
		{0, 0, 0},
	}
	for _, tc := range cases {
		s, m := SplitCounts(tc.max)
		if s != tc.simple || m != tc.multi {
			t.Fatalf("SplitCounts(%d) = (%d, %d), want (%d, %d)", tc.max, s, m, tc.simple, tc.multi)
		}
	}
}

func TestSelectMixesShapes(t *testing.T) {
	user := team("me", 100, 200, 300, 400, 500)
	others := []league.TeamRoster{team("them", 150, 250, 350, 450, 550)}

	res := Selector{NewID: sequentialIDs()}.Select(user, others, 4)
	if len(res.Proposals) != 4 {
		t.Fatalf("expected 4 proposals, got %d", len(res.Proposals))
	}
	if res.SimpleCount != 2 || res.MultiCount != 2 {
		t.Fatalf("expected 2/2 split, got %d/%d", res.SimpleCount, res.MultiCount)
	}

	simple, multi := 0, 0
	for _, p := range res.Proposals {
		if p.TradeType.Simple() {
			simple++
		} else {
			multi++
		}
	}
	if simple != 2 || multi != 2 {
		t.Fatalf("expected 2 simple and 2 multi, got %d and %d", simple, multi)
	}

	if !sort.SliceIsSorted(res.Proposals, func(i, j int) bool {
		return res.Proposals[i].FairnessScore > res.Proposals[j].FairnessScore
	}) {
		t.Fatalf("expected proposals sorted by fairness")
	}
	if got := res.Considered[domain.OneForOne]; got != 15 {
		t.Fatalf("expected 15 simple candidates considered, got %d", got)
	}
	if got := res.Considered[domain.TwoForTwo]; got != TwoForTwoLimit {
		t.Fatalf("expected %d 2-for-2 candidates considered, got %d", TwoForTwoLimit, got)
	}
}

func TestSelectKeepsFairestSimpleTrades(t *testing.T) {
	user := team("me", 100, 200, 300, 400, 500)
	others := []league.TeamRoster{team("them", 150, 250, 350, 450, 550)}

	res := Selector{NewID: sequentialIDs()}.Select(user, others, 1)
	if len(res.Proposals) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(res.Proposals))
	}
	p := res.Proposals[0]
	if p.TradeType != domain.OneForOne {
		t.Fatalf("expected 1-for-1, got %s", p.TradeType)
	}
	// 500 for 550 is the fairest user-favorable swap.
	if p.TeamA.Giving[0].PlayerID != "me-4" || p.TeamA.Receiving[0].PlayerID != "them-4" {
		t.Fatalf("expected me-4 for them-4, got %s for %s", p.TeamA.Giving[0].PlayerID, p.TeamA.Receiving[0].PlayerID)
	}
}

func TestSelectProposalSides(t *testing.T) {
	user := team("me", 100, 200, 300, 400, 500)
	others := []league.TeamRoster{team("a", 150, 250, 350), team("b", 450, 550)}

	res := Selector{NewID: sequentialIDs()}.Select(user, others, 10)
	if len(res.Proposals) == 0 || len(res.Proposals) > 10 {
		t.Fatalf("expected 1..10 proposals, got %d", len(res.Proposals))
	}
	seen := map[string]bool{}
	for _, p := range res.Proposals {
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true

		if p.TeamA.OwnerID != "me" {
			t.Fatalf("expected user on side A, got %s", p.TeamA.OwnerID)
		}
		if p.TeamA.NetValue <= 0 || p.TeamB.NetValue != -p.TeamA.NetValue {
			t.Fatalf("unexpected net values %d / %d", p.TeamA.NetValue, p.TeamB.NetValue)
		}
		if want := domain.SumValues(p.TeamA.Receiving) - domain.SumValues(p.TeamA.Giving); p.TeamA.NetValue != want {
			t.Fatalf("expected net %d, got %d", want, p.TeamA.NetValue)
		}
		if !slices.Equal(p.TeamA.Giving, p.TeamB.Receiving) || !slices.Equal(p.TeamA.Receiving, p.TeamB.Giving) {
			t.Fatalf("expected mirrored sides in %s", p.ID)
		}
		if p.FairnessTier != TierFor(p.FairnessScore) || p.FairnessScore > 1.0 {
			t.Fatalf("unexpected fairness %v tier %s", p.FairnessScore, p.FairnessTier)
		}
	}
}

func TestSelectPoolIgnoresTeamSplit(t *testing.T) {
	user := team("me", 100)
	split := []league.TeamRoster{team("a", 200), team("b", 150), team("c", 110)}
	single := []league.TeamRoster{team("d", 200, 150, 110)}

	// simpleCount 1 bounds the kept pool, but every team is enumerated first, so the
	// fairest swap (100 for 110) wins however the receivers are spread.
	for name, others := range map[string][]league.TeamRoster{"split": split, "single": single} {
		res := Selector{NewID: sequentialIDs()}.Select(user, others, 1)
		if len(res.Proposals) != 1 {
			t.Fatalf("%s: expected 1 proposal, got %d", name, len(res.Proposals))
		}
		if got := res.Proposals[0].TeamA.Receiving[0].Value; got != 110 {
			t.Fatalf("%s: expected to receive the 110 player, got %d", name, got)
		}
		if got := res.Considered[domain.OneForOne]; got != 3 {
			t.Fatalf("%s: expected 3 candidates considered, got %d", name, got)
		}
	}
}

func TestSelectDefaultIDsAreUUIDs(t *testing.T) {
	user := team("me", 100)
	others := []league.TeamRoster{team("a", 120)}
	res := Selector{}.Select(user, others, 2)
	if len(res.Proposals) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(res.Proposals))
	}
	if _, err := uuid.Parse(res.Proposals[0].ID); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", res.Proposals[0].ID, err)
	}
}

func TestSelectNoOpponents(t *testing.T) {
	res := Selector{}.Select(team("me", 100), nil, 10)
	if len(res.Proposals) != 0 {
		t.Fatalf("expected no proposals, got %d", len(res.Proposals))
	}
}
