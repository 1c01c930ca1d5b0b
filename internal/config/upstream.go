package config

// SleeperConfig controls how we talk to the fantasy platform.
type SleeperConfig struct {
	BaseURL string
}

// StatsConfig controls the season projection source.
type StatsConfig struct {
	BaseURL string
	APIKey  string
	Season  int
}

// UpstreamConfig is shared by every outbound call. MaxAttempts is 1 plus the configured retries.
type UpstreamConfig struct {
	RatePerSecond  float64
	Burst          int
	MaxAttempts    int
	Timeout        Duration
	BreakerTimeout Duration
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL: envOrDefault(envSleeperBaseURL, defaultSleeperBaseURL),
	}
}

func loadStats() StatsConfig {
	return StatsConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		APIKey:  envOrDefault(envStatsAPIKey, ""),
		Season:  intEnvOrDefault(envStatsSeason, defaultStatsSeason),
	}
}

func loadUpstream() UpstreamConfig {
	retries := intEnvOrDefault(envUpstreamRetries, defaultUpstreamRetries)
	if retries < 0 {
		retries = 0
	}
	return UpstreamConfig{
		RatePerSecond:  floatEnvOrDefault(envUpstreamRate, defaultUpstreamRate),
		Burst:          intEnvOrDefault(envUpstreamBurst, defaultUpstreamBurst),
		MaxAttempts:    retries + 1,
		Timeout:        durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		BreakerTimeout: durationEnvOrDefault(envBreakerTimeout, defaultBreakerTimeout),
	}
}
