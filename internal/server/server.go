package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	httpserver "github.com/preston-bernstein/endzone-trade-service/internal/http"
	"github.com/preston-bernstein/endzone-trade-service/internal/http/handlers"
	"github.com/preston-bernstein/endzone-trade-service/internal/http/middleware"
	"github.com/preston-bernstein/endzone-trade-service/internal/logging"
	"github.com/preston-bernstein/endzone-trade-service/internal/metrics"
	"github.com/preston-bernstein/endzone-trade-service/internal/projections"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
	"github.com/preston-bernstein/endzone-trade-service/internal/valuation"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	service       *apptrades.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server from configuration. Invalid heuristics or an unreachable
// account store fail here rather than at request time.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	svc, recorder, err := BuildService(cfg, logger, recorder)
	if err != nil {
		return nil, err
	}
	accounts, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	httpSrv := buildHTTPServer(cfg, svc, accounts, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         accounts,
		service:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, accounts store.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      accounts,
		httpServer: httpSrv,
	}
}

// BuildService wires the recommendation service from configuration. A nil recorder is
// replaced with an in-memory one.
func BuildService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*apptrades.Service, *metrics.Recorder, error) {
	tables, err := valuation.LoadTables(cfg.HeuristicsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load heuristics: %w", err)
	}
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	up, err := newProviderFactory(logger, recorder).build(cfg)
	if err != nil {
		return nil, nil, err
	}
	logging.Info(logger, "recommendation service configured",
		slog.String(logging.FieldProvider, up.name),
		slog.String(logging.FieldTablesVersion, tables.Version),
		slog.String(logging.FieldSeason, up.season))

	svc := apptrades.NewService(apptrades.Deps{
		League:      up.league,
		Players:     up.players,
		Projections: projections.NewLoader(up.projections, up.season, logger),
		Tables:      tables,
		Metrics:     recorder,
		Logger:      logger,
	})
	return svc, recorder, nil
}

func buildHTTPServer(cfg config.Config, svc *apptrades.Service, accounts store.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, accounts, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(":"+cfg.Port, wrapped)
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String(logging.FieldAddr, s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String(logging.FieldAddr, s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logging.Error(s.logger, "failed to close account store", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String(logging.FieldAddr, srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
