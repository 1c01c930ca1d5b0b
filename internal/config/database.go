package config

import "strings"

// DatabaseConfig points at the session/league account store.
type DatabaseConfig struct {
	Driver string // sqlite | postgres | memory
	URL    string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Driver: strings.ToLower(envOrDefault(envDatabaseDriver, defaultDatabaseDriver)),
		URL:    envOrDefault(envDatabaseURL, defaultDatabaseURL),
	}
}
