package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

// StubProvider is a test double for every upstream interface. Each Err field fails the
// matching fetch; Calls counts every fetch.
type StubProvider struct {
	Rosters     []league.Roster
	Users       []league.User
	Settings    league.Settings
	Players     map[string]players.Info
	Projections []providers.Projection

	RostersErr     error
	UsersErr       error
	LeagueErr      error
	PlayersErr     error
	ProjectionsErr error

	Calls atomic.Int32
}

func (s *StubProvider) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	_ = ctx
	_ = leagueID
	s.Calls.Add(1)
	return s.Rosters, s.RostersErr
}

func (s *StubProvider) FetchUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	_ = ctx
	_ = leagueID
	s.Calls.Add(1)
	return s.Users, s.UsersErr
}

func (s *StubProvider) FetchLeague(ctx context.Context, leagueID string) (league.Settings, error) {
	_ = ctx
	s.Calls.Add(1)
	settings := s.Settings
	if settings.LeagueID == "" {
		settings.LeagueID = leagueID
	}
	return settings, s.LeagueErr
}

func (s *StubProvider) FetchPlayers(ctx context.Context) (map[string]players.Info, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Players, s.PlayersErr
}

func (s *StubProvider) FetchProjections(ctx context.Context, season string) ([]providers.Projection, error) {
	_ = ctx
	_ = season
	s.Calls.Add(1)
	return s.Projections, s.ProjectionsErr
}

var _ providers.DataProvider = (*StubProvider)(nil)
