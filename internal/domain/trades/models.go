package trades

import "github.com/preston-bernstein/endzone-trade-service/internal/domain/players"

// Type is the cardinality pattern of a trade.
type Type string

const (
	OneForOne     Type = "1v1"
	TwoForTwo     Type = "2v2"
	ThreeForThree Type = "3v3"
)

// Simple reports whether the trade is a single-player swap.
func (t Type) Simple() bool {
	return t == OneForOne
}

// FairnessTier labels a fairness score.
type FairnessTier string

const (
	VeryStrict   FairnessTier = "very_strict"
	SomewhatFair FairnessTier = "somewhat_fair"
	Fleece       FairnessTier = "fleece"
)

// Asset is a player moving in a trade.
type Asset struct {
	PlayerID string           `json:"player_id"`
	Name     string           `json:"name"`
	Position players.Position `json:"position"`
	Value    int              `json:"value"`
}

// AssetFrom converts a valued player to a trade asset.
func AssetFrom(p players.Player) Asset {
	return Asset{
		PlayerID: p.ID,
		Name:     p.Name,
		Position: p.Position,
		Value:    p.EndzoneValue,
	}
}

// Side is one team's view of a trade. NetValue is value received minus value given.
type Side struct {
	OwnerID   string  `json:"owner_id"`
	TeamName  string  `json:"team_name"`
	Giving    []Asset `json:"giving"`
	Receiving []Asset `json:"receiving"`
	NetValue  int     `json:"net_value"`
}

// Proposal is a bilateral trade between the requesting team (TeamA) and another team (TeamB).
type Proposal struct {
	ID            string       `json:"id"`
	TeamA         Side         `json:"team_a"`
	TeamB         Side         `json:"team_b"`
	FairnessScore float64      `json:"fairness_score"`
	FairnessTier  FairnessTier `json:"fairness_tier"`
	TradeType     Type         `json:"trade_type"`
}

// SumValues totals the value of a set of assets.
func SumValues(assets []Asset) int {
	total := 0
	for _, a := range assets {
		total += a.Value
	}
	return total
}
