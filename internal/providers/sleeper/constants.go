package sleeper

import "time"

const (
	providerName       = "sleeper"
	defaultBaseURL     = "https://api.sleeper.app/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultSport       = "nfl"
)
