package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/endzone-trade-service/internal/http/handlers"
	"github.com/preston-bernstein/endzone-trade-service/internal/http/middleware"
)

// NewRouter registers HTTP routes. Matched routes are tagged for request logs and metrics.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RouteTags)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/leagues/{"+middleware.LeagueIDVar+"}/trades", handler.Trades).Methods(nethttp.MethodGet)
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)
	return r
}
