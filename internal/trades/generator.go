// Package trades enumerates user-favorable trade candidates and selects a ranked result set.
package trades

import (
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
)

// Per-shape gates and caps, applied per opposing team.
const (
	TwoForTwoMinFairness     = 0.60
	TwoForTwoLimit           = 10
	ThreeForThreeMinFairness = 0.50
	ThreeForThreeAttempts    = 50
	ThreeForThreeLimit       = 5
)

// Candidate is an unscored-for-output trade between the user and one other team.
type Candidate struct {
	Type     domain.Type
	Other    *league.TeamRoster
	Give     []domain.Asset
	Receive  []domain.Asset
	Given    int
	Received int
	Fairness float64
}

func newCandidate(t domain.Type, other *league.TeamRoster, give, receive []players.Player) (Candidate, bool) {
	c := Candidate{Type: t, Other: other}
	for _, p := range give {
		c.Give = append(c.Give, domain.AssetFrom(p))
		c.Given += p.EndzoneValue
	}
	for _, p := range receive {
		c.Receive = append(c.Receive, domain.AssetFrom(p))
		c.Received += p.EndzoneValue
	}
	if c.Received <= c.Given {
		return Candidate{}, false
	}
	c.Fairness = Fairness(c.Given, c.Received)
	return c, true
}

// OneForOne returns every single-player swap in which the user strictly gains.
func OneForOne(user, other *league.TeamRoster) []Candidate {
	mine, theirs := user.Tradeable(), other.Tradeable()
	var out []Candidate
	for _, a := range mine {
		for _, b := range theirs {
			if c, ok := newCandidate(domain.OneForOne, other, []players.Player{a}, []players.Player{b}); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// TwoForTwo returns the first TwoForTwoLimit accepted pair swaps in index order.
func TwoForTwo(user, other *league.TeamRoster) []Candidate {
	mine, theirs := user.Tradeable(), other.Tradeable()
	var out []Candidate
	for i := 0; i < len(mine); i++ {
		for j := i + 1; j < len(mine); j++ {
			for x := 0; x < len(theirs); x++ {
				for y := x + 1; y < len(theirs); y++ {
					c, ok := newCandidate(domain.TwoForTwo, other,
						[]players.Player{mine[i], mine[j]},
						[]players.Player{theirs[x], theirs[y]})
					if !ok || c.Fairness < TwoForTwoMinFairness {
						continue
					}
					out = append(out, c)
					if len(out) == TwoForTwoLimit {
						return out
					}
				}
			}
		}
	}
	return out
}

// ThreeForThree enumerates triple swaps in index order. At most ThreeForThreeAttempts
// combinations are considered, counted before any filter, and at most ThreeForThreeLimit kept.
func ThreeForThree(user, other *league.TeamRoster) []Candidate {
	mine, theirs := user.Tradeable(), other.Tradeable()
	var out []Candidate
	attempts := 0
	for i := 0; i < len(mine); i++ {
		for j := i + 1; j < len(mine); j++ {
			for k := j + 1; k < len(mine); k++ {
				give := []players.Player{mine[i], mine[j], mine[k]}
				for x := 0; x < len(theirs); x++ {
					for y := x + 1; y < len(theirs); y++ {
						for z := y + 1; z < len(theirs); z++ {
							if attempts == ThreeForThreeAttempts {
								return out
							}
							attempts++
							c, ok := newCandidate(domain.ThreeForThree, other, give,
								[]players.Player{theirs[x], theirs[y], theirs[z]})
							if !ok || c.Fairness < ThreeForThreeMinFairness {
								continue
							}
							out = append(out, c)
							if len(out) == ThreeForThreeLimit {
								return out
							}
						}
					}
				}
			}
		}
	}
	return out
}
