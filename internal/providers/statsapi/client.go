// Package statsapi reads season point projections from the third-party stats provider.
package statsapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

const (
	providerName       = "statsapi"
	defaultHTTPTimeout = 10 * time.Second
	apiKeyHeader       = "X-API-Key"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches name-keyed season projections.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient providers.HTTPDoer
}

// NewClient returns a stats client. BaseURL is required.
func NewClient(cfg Config) *Client {
	var doer providers.HTTPDoer = &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:     cfg.APIKey,
		httpClient: doer,
	}
}

type projectionResponse struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
}

// FetchProjections returns every projection published for season; entries without a name are dropped.
func (c *Client) FetchProjections(ctx context.Context, season string) ([]providers.Projection, error) {
	if _, err := strconv.Atoi(season); err != nil {
		season = strconv.Itoa(time.Now().Year())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/projections/"+season, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	var payload []projectionResponse
	if err := providers.DoJSON(c.httpClient, req, providerName, "projections", &payload); err != nil {
		return nil, err
	}
	out := make([]providers.Projection, 0, len(payload))
	for _, p := range payload {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		out = append(out, providers.Projection{
			Name:     name,
			Position: strings.ToUpper(strings.TrimSpace(p.Position)),
			Team:     strings.ToUpper(strings.TrimSpace(p.Team)),
			Points:   p.Points,
		})
	}
	return out, nil
}
