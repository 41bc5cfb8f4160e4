// Package app assembles the scorecard service: database, event bus,
// module services, and the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	courseservice "github.com/fairway-collective/scorecard/app/modules/course/application"
	coursehandlers "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/handlers"
	roundservice "github.com/fairway-collective/scorecard/app/modules/round/application"
	roundhandlers "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/handlers"
	settlementservice "github.com/fairway-collective/scorecard/app/modules/settlement/application"
	settlementhandlers "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/handlers"
	settlementsubscribers "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/subscribers"
	"github.com/fairway-collective/scorecard/config"
	"github.com/fairway-collective/scorecard/db/bundb"
	"github.com/fairway-collective/scorecard/internal/auth"
	"github.com/fairway-collective/scorecard/internal/eventbus"
	"github.com/fairway-collective/scorecard/internal/observability"
	roundmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/round"
	settlementmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/settlement"
)

// App holds the assembled application.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *bundb.DBService
	EventBus eventbus.EventBus
	Registry *prometheus.Registry

	CourseService     courseservice.Service
	RoundService      roundservice.Service
	SettlementService settlementservice.Service

	subscribers *settlementsubscribers.SettlementSubscribers
	httpServer  *http.Server
	metrics     *http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(observability.Config{
		ServiceName: "scorecard",
		LogLevel:    cfg.Observability.LogLevel,
		LogFormat:   cfg.Observability.LogFormat,
	})
	registry := observability.NewPrometheusRegistry()

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.NewJetStreamEventBus(cfg.NATS.URL, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	courseSvc := courseservice.NewCourseService(dbService.CourseDB, logger)
	roundSvc := roundservice.NewRoundService(
		dbService.RoundDB,
		dbService.CourseDB,
		bus,
		logger,
		roundmetrics.NewPrometheusMetrics(registry),
		observability.NewTracer("round"),
	)
	settlementSvc := settlementservice.NewSettlementService(
		dbService.RoundDB,
		dbService.CourseDB,
		dbService.SettlementDB,
		bus,
		logger,
		settlementmetrics.NewPrometheusMetrics(registry),
		observability.NewTracer("settlement"),
	)

	var tokens auth.Service
	if cfg.JWT.Secret != "" {
		tokens = auth.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	} else {
		logger.Warn("JWT secret not configured; HTTP authentication is disabled")
	}

	router := newRouter(logger, tokens, courseSvc, roundSvc, settlementSvc)

	application := &App{
		Config:            cfg,
		Logger:            logger,
		DB:                dbService,
		EventBus:          bus,
		Registry:          registry,
		CourseService:     courseSvc,
		RoundService:      roundSvc,
		SettlementService: settlementSvc,
		subscribers:       settlementsubscribers.NewSettlementSubscribers(bus, settlementSvc, logger),
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	if cfg.Observability.MetricsAddress != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		application.metrics = &http.Server{
			Addr:              cfg.Observability.MetricsAddress,
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return application, nil
}

func newRouter(
	logger *slog.Logger,
	tokens auth.Service,
	courseSvc courseservice.Service,
	roundSvc roundservice.Service,
	settlementSvc settlementservice.Service,
) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(tokens))
		coursehandlers.NewHandlers(courseSvc, logger).RegisterRoutes(r)
		roundhandlers.NewHandlers(roundSvc, logger).RegisterRoutes(r)
		settlementhandlers.NewHandlers(settlementSvc, logger).RegisterRoutes(r)
	})

	return router
}

// Run starts the subscribers and HTTP servers and blocks until ctx is
// cancelled or a server fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.subscribers.Start(ctx); err != nil {
		return fmt.Errorf("failed to start settlement subscribers: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		a.Logger.Info("HTTP server listening", slog.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if a.metrics != nil {
		go func() {
			a.Logger.Info("Metrics server listening", slog.String("address", a.metrics.Addr))
			if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close shuts the servers, event bus, and database down.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.metrics != nil {
		if err := a.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.EventBus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.DB.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
