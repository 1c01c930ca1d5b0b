package providers

import (
	"context"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

type guardedLeague struct {
	next  LeagueProvider
	guard *Guard
}

// NewGuardedLeagueProvider wraps every league call in g.
func NewGuardedLeagueProvider(next LeagueProvider, g *Guard) LeagueProvider {
	return &guardedLeague{next: next, guard: g}
}

func (p *guardedLeague) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return Call(ctx, p.guard, "rosters", func(ctx context.Context) ([]league.Roster, error) {
		return p.next.FetchRosters(ctx, leagueID)
	})
}

func (p *guardedLeague) FetchUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return Call(ctx, p.guard, "users", func(ctx context.Context) ([]league.User, error) {
		return p.next.FetchUsers(ctx, leagueID)
	})
}

func (p *guardedLeague) FetchLeague(ctx context.Context, leagueID string) (league.Settings, error) {
	if p.next == nil {
		return league.Settings{}, ErrProviderUnavailable
	}
	return Call(ctx, p.guard, "league", func(ctx context.Context) (league.Settings, error) {
		return p.next.FetchLeague(ctx, leagueID)
	})
}

type guardedPlayers struct {
	next  PlayerProvider
	guard *Guard
}

// NewGuardedPlayerProvider wraps player database fetches in g.
func NewGuardedPlayerProvider(next PlayerProvider, g *Guard) PlayerProvider {
	return &guardedPlayers{next: next, guard: g}
}

func (p *guardedPlayers) FetchPlayers(ctx context.Context) (map[string]players.Info, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return Call(ctx, p.guard, "players", p.next.FetchPlayers)
}

type guardedProjections struct {
	next  ProjectionProvider
	guard *Guard
}

// NewGuardedProjectionProvider wraps projection fetches in g.
func NewGuardedProjectionProvider(next ProjectionProvider, g *Guard) ProjectionProvider {
	return &guardedProjections{next: next, guard: g}
}

func (p *guardedProjections) FetchProjections(ctx context.Context, season string) ([]Projection, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return Call(ctx, p.guard, "projections", func(ctx context.Context) ([]Projection, error) {
		return p.next.FetchProjections(ctx, season)
	})
}
