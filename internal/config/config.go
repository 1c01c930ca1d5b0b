package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port           string
	Provider       string
	FixtureDir     string
	HeuristicsPath string
	LogLevel       string
	LogFormat      string
	Sleeper        SleeperConfig
	Stats          StatsConfig
	Upstream       UpstreamConfig
	Database       DatabaseConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		Provider:       envOrDefault(envProvider, defaultProvider),
		FixtureDir:     envOrDefault(envFixtureDir, ""),
		HeuristicsPath: envOrDefault(envHeuristicsPath, ""),
		LogLevel:       envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:      envOrDefault(envLogFormat, defaultLogFormat),
		Sleeper:        loadSleeper(),
		Stats:          loadStats(),
		Upstream:       loadUpstream(),
		Database:       loadDatabase(),
		Metrics:        loadMetrics(),
	}
}
