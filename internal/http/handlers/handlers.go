package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/http/middleware"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
)

// Recommender produces trade recommendations.
type Recommender interface {
	Recommend(ctx context.Context, req apptrades.Request) (apptrades.Response, error)
}

// Handler wires HTTP routes to the recommendation service.
type Handler struct {
	svc      Recommender
	accounts Accounts
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc Recommender, accounts Accounts, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		accounts: accounts,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic once the account store answers.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.accounts == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "account store not configured", h.logger)
		return
	}
	if err := h.accounts.Ping(r.Context()); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", slog.Any(logging.FieldError, err))
		writeError(w, r, nethttp.StatusServiceUnavailable, "account store unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Trades returns trade proposals for the session's team in the league.
func (h *Handler) Trades(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	leagueID := strings.TrimSpace(mux.Vars(r)[middleware.LeagueIDVar])
	if leagueID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing league id", logger)
		return
	}

	email, err := h.authenticate(r)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	link, err := h.accounts.LeagueUsername(r.Context(), leagueID, email)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "recommendations not configured", logger)
		return
	}

	req := parseRequest(r)
	req.LeagueID = leagueID
	req.Username = link.PlatformUsername

	ctx := r.Context()
	if logger != nil {
		ctx = logging.WithLogger(ctx, logger.With(slog.String(logging.FieldUsername, link.PlatformUsername)))
	}
	resp, err := h.svc.Recommend(ctx, req)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeData(w, resp, logger)
}

// parseRequest reads the optional query parameters. Unparseable values fall back to defaults.
func parseRequest(r *nethttp.Request) apptrades.Request {
	q := r.URL.Query()
	var req apptrades.Request
	if raw := strings.TrimSpace(q.Get("min_fairness")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			req.MinFairness = v
		}
	}
	if raw := strings.TrimSpace(q.Get("max_results")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			req.MaxResults = v
		}
	}
	return req.Normalize()
}

// NotFound writes the error envelope for unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed writes the error envelope for known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
