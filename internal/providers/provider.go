package providers

import (
	"context"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

// LeagueProvider fetches league rosters, members, and settings from the fantasy platform.
type LeagueProvider interface {
	FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error)
	FetchUsers(ctx context.Context, leagueID string) ([]league.User, error)
	FetchLeague(ctx context.Context, leagueID string) (league.Settings, error)
}

// PlayerProvider fetches the platform's player database keyed by player id.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) (map[string]players.Info, error)
}

// Projection is one season projection as reported by a stats provider. It carries no player id.
type Projection struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
}

// ProjectionProvider fetches season point projections.
type ProjectionProvider interface {
	FetchProjections(ctx context.Context, season string) ([]Projection, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	LeagueProvider
	PlayerProvider
	ProjectionProvider
}
