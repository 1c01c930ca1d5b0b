package sleeper

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
)

func resolveHTTPClient(client *http.Client) providers.HTTPDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
