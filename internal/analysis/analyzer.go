// Package analysis turns raw league data into valued team rosters.
package analysis

import (
	"fmt"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	"github.com/preston-bernstein/endzone-trade-service/internal/valuation"
)

// Analyzer values every rostered player and assembles team rosters.
type Analyzer struct {
	tables *valuation.Tables
	needs  NeedsAnalyzer
}

// NewAnalyzer returns an analyzer. Nil tables use the embedded defaults; nil needs use DefaultNeeds.
func NewAnalyzer(tables *valuation.Tables, needs NeedsAnalyzer) *Analyzer {
	if tables == nil {
		tables = valuation.DefaultTables()
	}
	if needs == nil {
		needs = DefaultNeeds
	}
	return &Analyzer{tables: tables, needs: needs}
}

// Input is the league data for one analysis pass.
type Input struct {
	Rosters     []league.Roster
	Users       []league.User
	Players     map[string]players.Info
	Projections map[string]float64
	Dynasty     bool
}

// Analyze builds one TeamRoster per roster, in roster order.
// Projections are keyed by player id; every positive projection joins the valuation pool.
func (a *Analyzer) Analyze(in Input) []league.TeamRoster {
	model := valuation.NewModel(a.tables, valuation.PoolFromMap(in.Projections))

	usersByID := make(map[string]league.User, len(in.Users))
	for _, u := range in.Users {
		usersByID[u.UserID] = u
	}

	teams := make([]league.TeamRoster, 0, len(in.Rosters))
	for _, roster := range in.Rosters {
		team := league.TeamRoster{
			RosterID:       roster.RosterID,
			OwnerID:        roster.OwnerID,
			TeamName:       fmt.Sprintf("Team %d", roster.RosterID),
			Players:        make([]players.Player, 0, len(roster.PlayerIDs)),
			PositionCounts: make(map[players.Position]int),
		}
		if u, ok := usersByID[roster.OwnerID]; ok {
			if label := u.Label(); label != "" {
				team.TeamName = label
			}
			team.Username = u.DisplayName
			if team.Username == "" {
				team.Username = u.Username
			}
		}

		for _, id := range roster.PlayerIDs {
			p := valuePlayer(model, id, in)
			team.Players = append(team.Players, p)
			team.PositionCounts[p.Position]++
			team.TotalValue += p.EndzoneValue
		}
		team.Needs, team.Surplus = a.needs.Assess(team)
		teams = append(teams, team)
	}
	return teams
}

func valuePlayer(model *valuation.Model, id string, in Input) players.Player {
	info, ok := in.Players[id]
	if !ok {
		return players.Player{Info: placeholder(id)}
	}
	info.ID = id
	info.Position = players.NormalizePosition(string(info.Position))
	if info.Team == "" {
		info.Team = players.FreeAgentTeam
	}
	if info.Name == "" {
		info.Name = placeholder(id).Name
	}
	points := in.Projections[id]
	return players.Player{
		Info:            info,
		ProjectedPoints: points,
		EndzoneValue: model.Value(valuation.Input{
			Name:            info.Name,
			Position:        info.Position,
			ProjectedPoints: points,
			Age:             info.Age,
			Dynasty:         in.Dynasty,
		}),
	}
}

// placeholder is the metadata used for ids missing from the player database. Its value stays 0.
func placeholder(id string) players.Info {
	return players.Info{
		ID:       id,
		Name:     "Player " + id,
		Position: players.FLEX,
		Team:     players.FreeAgentTeam,
	}
}
