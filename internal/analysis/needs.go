package analysis

import (
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

// NeedsAnalyzer derives positional needs and surplus for a valued roster.
type NeedsAnalyzer interface {
	Assess(team league.TeamRoster) (needs, surplus []players.Position)
}

// StaticNeeds reports the same needs and surplus for every team.
// It stands in until need analysis is derived from roster composition.
type StaticNeeds struct {
	Needs   []players.Position
	Surplus []players.Position
}

// DefaultNeeds is the constant assessment attached to every roster.
var DefaultNeeds = StaticNeeds{
	Needs:   []players.Position{players.RB, players.WR},
	Surplus: []players.Position{players.QB},
}

func (s StaticNeeds) Assess(league.TeamRoster) ([]players.Position, []players.Position) {
	return append([]players.Position(nil), s.Needs...), append([]players.Position(nil), s.Surplus...)
}
