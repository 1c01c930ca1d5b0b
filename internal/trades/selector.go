package trades

import (
	"sort"

	"github.com/google/uuid"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
)

// IDFunc generates proposal identifiers.
type IDFunc func() string

// Selector runs the two-stage top-K selection over generated candidates.
type Selector struct {
	NewID IDFunc
}

// Result is the selected proposals plus counters describing the search.
type Result struct {
	Proposals   []domain.Proposal
	SimpleCount int
	MultiCount  int
	Considered  map[domain.Type]int
}

// SplitCounts divides maxResults between simple and multi-player trades.
func SplitCounts(maxResults int) (simple, multi int) {
	if maxResults <= 0 {
		return 0, 0
	}
	return (maxResults + 1) / 2, maxResults / 2
}

// Select builds the ranked proposal list for user against every other team.
func (s Selector) Select(user league.TeamRoster, others []league.TeamRoster, maxResults int) Result {
	simpleCount, multiCount := SplitCounts(maxResults)
	res := Result{
		SimpleCount: simpleCount,
		MultiCount:  multiCount,
		Considered:  make(map[domain.Type]int),
	}

	// Every opposing team is enumerated before any cut, so the pools do not depend on how
	// players are split across teams.
	var simple, multi []Candidate
	for i := range others {
		one := OneForOne(&user, &others[i])
		two := TwoForTwo(&user, &others[i])
		three := ThreeForThree(&user, &others[i])
		res.Considered[domain.OneForOne] += len(one)
		res.Considered[domain.TwoForTwo] += len(two)
		res.Considered[domain.ThreeForThree] += len(three)
		simple = append(simple, one...)
		multi = append(multi, two...)
		multi = append(multi, three...)
	}
	simple = topByFairness(topByFairness(simple, 2*simpleCount), simpleCount)
	multi = topByFairness(topByFairness(multi, 2*multiCount), multiCount)

	merged := make([]Candidate, 0, len(simple)+len(multi))
	merged = append(merged, simple...)
	merged = append(merged, multi...)
	merged = topByFairness(merged, maxResults)

	res.Proposals = make([]domain.Proposal, 0, len(merged))
	for _, c := range merged {
		res.Proposals = append(res.Proposals, s.proposal(&user, c))
	}
	return res
}

func (s Selector) proposal(user *league.TeamRoster, c Candidate) domain.Proposal {
	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	net := c.Received - c.Given
	return domain.Proposal{
		ID: newID(),
		TeamA: domain.Side{
			OwnerID:   user.OwnerID,
			TeamName:  user.TeamName,
			Giving:    c.Give,
			Receiving: c.Receive,
			NetValue:  net,
		},
		TeamB: domain.Side{
			OwnerID:   c.Other.OwnerID,
			TeamName:  c.Other.TeamName,
			Giving:    c.Receive,
			Receiving: c.Give,
			NetValue:  -net,
		},
		FairnessScore: c.Fairness,
		FairnessTier:  TierFor(c.Fairness),
		TradeType:     c.Type,
	}
}

// topByFairness stable-sorts descending by fairness and keeps at most n.
func topByFairness(cs []Candidate, n int) []Candidate {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Fairness > cs[j].Fairness })
	if n < 0 {
		n = 0
	}
	if len(cs) > n {
		cs = cs[:n]
	}
	return cs
}
