// Package store keeps login sessions and the per-user league to platform-username mapping.
package store

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session tokens.
	ErrSessionNotFound = errors.New("session not found")
	// ErrLeagueNotFound is returned when the user has not linked the league.
	ErrLeagueNotFound = errors.New("league not found")
	// ErrUsernameMissing is returned when a linked league has no platform username.
	ErrUsernameMissing = errors.New("platform username missing")
)

// DefaultSessionTTL is used when CreateSession is given a non-positive ttl.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Session is an authenticated login.
type Session struct {
	Token     string    `json:"token"`
	UserEmail string    `json:"user_email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LeagueLink ties a user to a league and their username on the fantasy platform.
type LeagueLink struct {
	LeagueID         string `db:"league_id" json:"league_id"`
	UserEmail        string `db:"user_email" json:"user_email"`
	PlatformUsername string `db:"platform_username" json:"platform_username"`
	LeagueName       string `db:"league_name" json:"league_name"`
}

// Store is the account store contract shared by the SQL and in-memory implementations.
type Store interface {
	SessionEmail(ctx context.Context, token string) (string, error)
	CreateSession(ctx context.Context, email string, ttl time.Duration) (Session, error)
	LeagueUsername(ctx context.Context, leagueID, email string) (LeagueLink, error)
	LinkLeague(ctx context.Context, link LeagueLink) error
	Ping(ctx context.Context) error
	Close() error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateLink(link LeagueLink) (LeagueLink, error) {
	link.LeagueID = strings.TrimSpace(link.LeagueID)
	link.UserEmail = normalizeEmail(link.UserEmail)
	link.PlatformUsername = strings.TrimSpace(link.PlatformUsername)
	link.LeagueName = strings.TrimSpace(link.LeagueName)
	if link.LeagueID == "" {
		return link, errors.New("league id required")
	}
	if link.UserEmail == "" {
		return link, errors.New("user email required")
	}
	return link, nil
}

func checkLink(link LeagueLink) (LeagueLink, error) {
	if strings.TrimSpace(link.PlatformUsername) == "" {
		return link, ErrUsernameMissing
	}
	return link, nil
}
