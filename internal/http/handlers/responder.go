package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/http/middleware"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/providers"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
)

// errorBody is the error envelope returned by every endpoint.
type errorBody struct {
	Success   bool           `json:"success"`
	Error     string         `json:"error"`
	Hint      string         `json:"hint,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

const (
	hintLinkLeague   = "Link this league to your account with your platform username, then retry."
	hintSetUsername  = "Add your platform username to the linked league, then retry."
	hintCheckLeague  = "Check the league id; the fantasy platform does not know this league."
	hintCheckAccount = "Make sure the stored platform username matches your display name in this league."
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeData(w http.ResponseWriter, payload any, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, successBody{Success: true, Data: payload}, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeProblem(w, r, status, errorBody{Error: message}, logger)
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, body errorBody, logger *slog.Logger) {
	body.Success = false
	body.RequestID = middleware.RequestIDFromContext(r.Context())
	if body.RequestID == "" {
		body.RequestID = r.Header.Get("X-Request-ID")
	}
	writeJSON(w, status, body, logger)
}

// statusFor maps a service or store error to its HTTP status and envelope.
func statusFor(err error) (int, errorBody) {
	var notFound *apptrades.UserTeamNotFoundError
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusUnauthorized, errorBody{Error: "authentication required"}
	case errors.Is(err, store.ErrLeagueNotFound):
		return http.StatusBadRequest, errorBody{Error: "league not linked to this account", Hint: hintLinkLeague}
	case errors.Is(err, store.ErrUsernameMissing):
		return http.StatusBadRequest, errorBody{Error: "no platform username stored for this league", Hint: hintSetUsername}
	case errors.As(err, &notFound):
		return http.StatusBadRequest, errorBody{
			Error: "could not find your team in this league",
			Hint:  hintCheckAccount,
			Details: map[string]any{
				"searched_username": notFound.Username,
				"available_teams":   notFound.Available,
			},
		}
	case errors.Is(err, apptrades.ErrUpstream) && errors.Is(err, providers.ErrNotFound):
		return http.StatusBadRequest, errorBody{Error: "league not found", Hint: hintCheckLeague}
	case errors.Is(err, apptrades.ErrUpstream):
		return http.StatusBadGateway, errorBody{Error: "league data unavailable: " + err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Error: err.Error()}
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	} else {
		logging.Warn(logger, "request rejected", slog.Int(logging.FieldStatusCode, status), slog.String("reason", body.Error))
	}
	writeProblem(w, r, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
