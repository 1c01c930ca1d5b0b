package trades

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	domain "github.com/preston-bernstein/endzone-trade-service/internal/domain/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/valuation"
)

const (
	DefaultMinFairness = 0.3
	DefaultMaxResults  = 10
	MaxResultsLimit    = 50
	topPlayersPerTeam  = 5
)

// ErrUpstream marks failures of the league data every recommendation requires.
var ErrUpstream = errors.New("required upstream data unavailable")

// ErrUserTeamNotFound matches any *UserTeamNotFoundError.
var ErrUserTeamNotFound = errors.New("user team not found")

// ErrPlayerNotFound is returned when a valuation target is not in the player database.
var ErrPlayerNotFound = errors.New("player not found")

// UserTeamNotFoundError reports the username searched and the teams that were available.
type UserTeamNotFoundError struct {
	Username  string
	Available []string
}

func (e *UserTeamNotFoundError) Error() string {
	return fmt.Sprintf("no team in league matches username %q", e.Username)
}

func (e *UserTeamNotFoundError) Is(target error) bool {
	return target == ErrUserTeamNotFound
}

// Request is one recommendation run.
type Request struct {
	LeagueID    string
	Username    string
	MinFairness float64
	MaxResults  int
}

// Normalize fills defaults and clamps MaxResults to [1, MaxResultsLimit].
func (r Request) Normalize() Request {
	r.LeagueID = strings.TrimSpace(r.LeagueID)
	r.Username = strings.TrimSpace(r.Username)
	if math.IsNaN(r.MinFairness) || r.MinFairness <= 0 || r.MinFairness > 1 {
		r.MinFairness = DefaultMinFairness
	}
	switch {
	case r.MaxResults == 0:
		r.MaxResults = DefaultMaxResults
	case r.MaxResults < 1:
		r.MaxResults = 1
	case r.MaxResults > MaxResultsLimit:
		r.MaxResults = MaxResultsLimit
	}
	return r
}

// Response is the assembled recommendation payload.
type Response struct {
	TradeProposals       []domain.Proposal `json:"trade_proposals"`
	LeagueInfo           LeagueInfo        `json:"league_info"`
	TotalPlayersAnalyzed int               `json:"total_players_analyzed"`
	TeamAnalyses         []TeamAnalysis    `json:"team_analyses"`
	UserTeamAnalysis     league.TeamRoster `json:"user_team_analysis"`
	Methodology          Methodology       `json:"methodology"`
	Parameters           Parameters        `json:"parameters"`
}

// LeagueInfo describes the league the run was computed for.
type LeagueInfo struct {
	Type              string   `json:"type"`
	UsesDynastyValues bool     `json:"uses_dynasty_values"`
	Name              string   `json:"name"`
	RosterPositions   []string `json:"roster_positions"`
}

// TeamAnalysis summarizes one team.
type TeamAnalysis struct {
	RosterID       int                      `json:"roster_id"`
	OwnerID        string                   `json:"owner_id"`
	TeamName       string                   `json:"team_name"`
	TotalValue     int                      `json:"total_value"`
	PlayerCount    int                      `json:"player_count"`
	PositionCounts map[players.Position]int `json:"position_counts"`
	Needs          []players.Position       `json:"needs"`
	Surplus        []players.Position       `json:"surplus"`
	TopPlayers     []players.Player         `json:"top_players"`
	IsUser         bool                     `json:"is_user"`
}

// Methodology explains how the values and proposals were produced.
type Methodology struct {
	Valuation     string             `json:"valuation"`
	TablesVersion string             `json:"tables_version"`
	TradeTypes    []domain.Type      `json:"trade_types"`
	FairnessTiers map[string]float64 `json:"fairness_tiers"`
	Selection     string             `json:"selection"`
}

// Parameters echoes the effective request parameters.
type Parameters struct {
	MinFairness   float64             `json:"min_fairness"`
	FairnessLabel domain.FairnessTier `json:"fairness_label"`
	MaxResults    int                 `json:"max_results"`
	SimpleCount   int                 `json:"simple_count"`
	MultiCount    int                 `json:"multi_count"`
}

// ValueRequest asks for one player's valuation in a league's context.
type ValueRequest struct {
	LeagueID string
	Player   string
}

// PlayerValuation is a single player's value with its breakdown.
type PlayerValuation struct {
	Player    players.Info        `json:"player"`
	Projected float64             `json:"projected_points"`
	Dynasty   bool                `json:"dynasty"`
	Breakdown valuation.Breakdown `json:"breakdown"`
}
