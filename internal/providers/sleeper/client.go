// Package sleeper reads league and player data from the Sleeper fantasy API.
package sleeper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches rosters, users, league settings, and the player database.
type Client struct {
	baseURL    string
	httpClient providers.HTTPDoer
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchRosters returns every roster in the league.
func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]league.Roster, error) {
	var payload []rosterResponse
	if err := c.get(ctx, "rosters", "/league/"+url.PathEscape(leagueID)+"/rosters", &payload); err != nil {
		return nil, err
	}
	out := make([]league.Roster, 0, len(payload))
	for _, r := range payload {
		out = append(out, mapRoster(r))
	}
	return out, nil
}

// FetchUsers returns every member of the league.
func (c *Client) FetchUsers(ctx context.Context, leagueID string) ([]league.User, error) {
	var payload []userResponse
	if err := c.get(ctx, "users", "/league/"+url.PathEscape(leagueID)+"/users", &payload); err != nil {
		return nil, err
	}
	out := make([]league.User, 0, len(payload))
	for _, u := range payload {
		out = append(out, mapUser(u))
	}
	return out, nil
}

// FetchLeague returns the league settings. Sleeper answers unknown ids with a JSON null.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (league.Settings, error) {
	var payload *leagueResponse
	if err := c.get(ctx, "league", "/league/"+url.PathEscape(leagueID), &payload); err != nil {
		return league.Settings{}, err
	}
	if payload == nil || payload.LeagueID == "" {
		return league.Settings{}, &providers.UpstreamError{
			Provider:   providerName,
			Op:         "league",
			StatusCode: http.StatusNotFound,
			Err:        fmt.Errorf("league %s: %w", leagueID, providers.ErrNotFound),
		}
	}
	return mapLeague(*payload), nil
}

// FetchPlayers returns the full NFL player database keyed by player id.
func (c *Client) FetchPlayers(ctx context.Context) (map[string]players.Info, error) {
	var payload map[string]playerResponse
	if err := c.get(ctx, "players", "/players/"+defaultSport, &payload); err != nil {
		return nil, err
	}
	out := make(map[string]players.Info, len(payload))
	for id, p := range payload {
		info := mapPlayer(id, p)
		out[info.ID] = info
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return providers.DoJSON(c.httpClient, req, providerName, op, out)
}
