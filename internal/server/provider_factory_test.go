package server

import (
	"context"
	"errors"
	"testing"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
	"github.com/preston-bernstein/endzone-trade-service/internal/projections"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers/fixture"
	"github.com/preston-bernstein/endzone-trade-service/internal/teststubs"
	"github.com/preston-bernstein/endzone-trade-service/internal/testutil"
)

func TestGuardedPlayerFailuresDoNotOpenLeagueBreaker(t *testing.T) {
	rec := metrics.NewRecorder()
	p := fixture.New()
	playerDB := &teststubs.StubProvider{PlayersErr: errors.New("player db down")}
	up := newProviderFactory(nil, rec).guard(
		config.UpstreamConfig{RatePerSecond: 1000, Burst: 100, MaxAttempts: 1},
		upstreams{name: providerFixture, league: p, players: playerDB, projections: p, season: "2025"},
	)
	svc := apptrades.NewService(apptrades.Deps{
		League:      up.league,
		Players:     up.players,
		Projections: projections.NewLoader(up.projections, up.season, nil),
		Metrics:     rec,
	})

	// Enough failing player fetches to open the player breaker, then one more request.
	for i := 0; i < 6; i++ {
		if _, err := svc.Recommend(context.Background(), apptrades.Request{LeagueID: testutil.FixtureLeagueID, Username: "alice"}); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i+1, err)
		}
	}
	if got := rec.BreakerTrips(playersUpstream(providerFixture)); got != 1 {
		t.Fatalf("expected the player breaker to trip once, got %d", got)
	}
	if got := rec.BreakerTrips(providerFixture); got != 0 {
		t.Fatalf("expected league breaker to stay closed, got %d trips", got)
	}
	if got := playerDB.Calls.Load(); got != 5 {
		t.Fatalf("expected the open breaker to short-circuit the sixth fetch, got %d calls", got)
	}
}

func TestProjectionsUpstreamNames(t *testing.T) {
	if got := projectionsUpstream(providerSleeper); got != statsUpstream {
		t.Fatalf("expected sleeper projections on %s, got %s", statsUpstream, got)
	}
	if got := projectionsUpstream(providerFixture); got != "fixture-projections" {
		t.Fatalf("expected fixture-projections, got %s", got)
	}
	if got := playersUpstream(providerSleeper); got != "sleeper-players" {
		t.Fatalf("expected sleeper-players, got %s", got)
	}
}
