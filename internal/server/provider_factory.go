package server

import (
	"log/slog"

	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

// providerFactory assembles the upstreams with shared guards (rate limit, breaker, retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (upstreams, error) {
	base, err := selectProvider(cfg, f.logger)
	if err != nil {
		return upstreams{}, err
	}
	return f.guard(cfg.Upstream, base), nil
}

// guard wraps every source. League calls get their own breaker so a failing player database or
// projection feed never opens it; only required calls can fail a request.
func (f providerFactory) guard(cfg config.UpstreamConfig, base upstreams) upstreams {
	league := providers.NewGuard(guardConfig(cfg, base.name), f.logger, f.metrics)
	players := providers.NewGuard(guardConfig(cfg, playersUpstream(base.name)), f.logger, f.metrics)
	stats := providers.NewGuard(guardConfig(cfg, projectionsUpstream(base.name)), f.logger, f.metrics)
	return upstreams{
		name:        base.name,
		league:      providers.NewGuardedLeagueProvider(base.league, league),
		players:     providers.NewGuardedPlayerProvider(base.players, players),
		projections: providers.NewGuardedProjectionProvider(base.projections, stats),
		season:      base.season,
	}
}

func playersUpstream(name string) string {
	return name + "-players"
}

// projectionsUpstream names the projection guard. Sleeper projections come from the stats service.
func projectionsUpstream(name string) string {
	if name == providerSleeper {
		return statsUpstream
	}
	return name + "-projections"
}

func guardConfig(cfg config.UpstreamConfig, name string) providers.GuardConfig {
	return providers.GuardConfig{
		Name:           name,
		RatePerSecond:  cfg.RatePerSecond,
		Burst:          cfg.Burst,
		MaxAttempts:    cfg.MaxAttempts,
		BreakerTimeout: cfg.BreakerTimeout,
	}
}
