package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers/fixture"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers/sleeper"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers/statsapi"
)

const (
	providerFixture = "fixture"
	providerSleeper = "sleeper"
	statsUpstream   = "statsapi"
)

// upstreams are the data sources behind one recommendation service.
type upstreams struct {
	name        string
	league      providers.LeagueProvider
	players     providers.PlayerProvider
	projections providers.ProjectionProvider
	season      string
}

func selectProvider(cfg config.Config, logger *slog.Logger) (upstreams, error) {
	season := strconv.Itoa(cfg.Stats.Season)
	switch cfg.Provider {
	case providerFixture, "":
		p := fixture.New()
		if cfg.FixtureDir != "" {
			var err error
			if p, err = fixture.NewFromDir(cfg.FixtureDir); err != nil {
				return upstreams{}, fmt.Errorf("load fixture dir %s: %w", cfg.FixtureDir, err)
			}
		}
		return upstreams{name: providerFixture, league: p, players: p, projections: p, season: season}, nil
	case providerSleeper:
		client := &http.Client{Timeout: cfg.Upstream.Timeout}
		sc := sleeper.NewClient(sleeper.Config{BaseURL: cfg.Sleeper.BaseURL, HTTPClient: client})
		stats := statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.Stats.BaseURL,
			APIKey:     cfg.Stats.APIKey,
			HTTPClient: client,
		})
		return upstreams{name: providerSleeper, league: sc, players: sc, projections: stats, season: season}, nil
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		p := fixture.New()
		return upstreams{name: providerFixture, league: p, players: p, projections: p, season: season}, nil
	}
}
