package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envFixtureDir     = "FIXTURE_DIR"
	envHeuristicsPath = "HEURISTICS_PATH"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	envSleeperBaseURL = "SLEEPER_BASE_URL"
	envStatsBaseURL   = "STATS_BASE_URL"
	envStatsAPIKey    = "STATS_API_KEY"
	envStatsSeason    = "PROJECTION_SEASON"

	envUpstreamRate    = "UPSTREAM_RATE_PER_SEC"
	envUpstreamBurst   = "UPSTREAM_BURST"
	envUpstreamRetries = "UPSTREAM_RETRIES"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envBreakerTimeout  = "UPSTREAM_BREAKER_TIMEOUT"

	envDatabaseDriver = "DATABASE_DRIVER"
	envDatabaseURL    = "DATABASE_URL"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "4000"
	defaultProvider  = "fixture"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultSleeperBaseURL = "https://api.sleeper.app/v1"
	defaultStatsBaseURL   = "https://api.fantasystats.io/v1"
	defaultStatsSeason    = 2025

	// Sleeper caps clients at 1000 calls/minute.
	defaultUpstreamRate    = 10.0
	defaultUpstreamBurst   = 5
	defaultUpstreamRetries = 0
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultBreakerTimeout  = 30 * Duration(time.Second)

	defaultDatabaseDriver = "sqlite"
	defaultDatabaseURL    = "data/endzone.db"

	defaultMetricsPort = "9090"
	defaultServiceName = "endzone-trade-service"
)
