package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/endzone-trade-service/internal/http/requestutil"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
)

// LeagueIDVar is the route variable carrying the league id.
const LeagueIDVar = "leagueID"

// unmatchedRoute labels requests no route matched, so metric labels stay bounded.
const unmatchedRoute = "unmatched"

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
// Route labels come from RouteTags, which the router registers with Use.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		attrs := []any{
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		}
		logger := baseLogger.With(attrs...)

		route := &routeInfo{template: unmatchedRoute}
		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		ctx = context.WithValue(ctx, routeInfoKey{}, route)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, route.template, ww.status, duration)

		done := []any{
			slog.String(logging.FieldRoute, route.template),
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		}
		if route.leagueID != "" {
			done = append(done, slog.String(logging.FieldLeagueID, route.leagueID))
		}
		if ww.status >= http.StatusInternalServerError {
			logging.Warn(logger, "request complete", done...)
			return
		}
		logging.Info(logger, "request complete", done...)
	})
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type requestIDKey struct{}

type routeInfo struct {
	template string
	leagueID string
}

type routeInfoKey struct{}

// RouteTags records the matched route template and league id for LoggingMiddleware and
// scopes the request logger to the league. Register it with (*mux.Router).Use.
func RouteTags(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, _ := r.Context().Value(routeInfoKey{}).(*routeInfo)
		if info != nil {
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					info.template = tpl
				}
			}
		}
		if leagueID := mux.Vars(r)[LeagueIDVar]; leagueID != "" {
			if info != nil {
				info.leagueID = leagueID
			}
			if logger := logging.FromContext(r.Context(), nil); logger != nil {
				r = r.WithContext(logging.WithLogger(r.Context(), logger.With(slog.String(logging.FieldLeagueID, leagueID))))
			}
		}
		next.ServeHTTP(w, r)
	})
}

var _ mux.MiddlewareFunc = RouteTags
