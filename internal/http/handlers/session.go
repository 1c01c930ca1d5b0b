package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/http/requestutil"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
)

// SessionCookie is the cookie carrying the login session token.
const SessionCookie = "session_token"

// Accounts resolves sessions and league links.
type Accounts interface {
	SessionEmail(ctx context.Context, token string) (string, error)
	LeagueUsername(ctx context.Context, leagueID, email string) (store.LeagueLink, error)
	Ping(ctx context.Context) error
}

// sessionToken reads a bearer token, falling back to the session cookie.
func sessionToken(r *http.Request) string {
	if token := requestutil.BearerToken(r); token != "" {
		return token
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// authenticate returns the session's email, or store.ErrSessionNotFound.
func (h *Handler) authenticate(r *http.Request) (string, error) {
	token := sessionToken(r)
	if token == "" || h.accounts == nil {
		return "", store.ErrSessionNotFound
	}
	return h.accounts.SessionEmail(r.Context(), token)
}
