package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	alertrepo "github.com/powerline/gridstock/internal/adapter/postgres/alert"
	deliveryrepo "github.com/powerline/gridstock/internal/adapter/postgres/delivery"
	forecastrepo "github.com/powerline/gridstock/internal/adapter/postgres/forecast"
	inventoryrepo "github.com/powerline/gridstock/internal/adapter/postgres/inventory"
	materialrepo "github.com/powerline/gridstock/internal/adapter/postgres/material"
	projectrepo "github.com/powerline/gridstock/internal/adapter/postgres/project"
	usagerepo "github.com/powerline/gridstock/internal/adapter/postgres/usage"
	userrepo "github.com/powerline/gridstock/internal/adapter/postgres/user"
	"github.com/powerline/gridstock/internal/adapter/provider/forecast"
	"github.com/powerline/gridstock/internal/auth"
	"github.com/powerline/gridstock/internal/config"
	authservice "github.com/powerline/gridstock/internal/service/auth"
	"github.com/powerline/gridstock/internal/service/inventory"
	"github.com/powerline/gridstock/internal/service/project"
	"github.com/powerline/gridstock/internal/transport/middleware"
	"github.com/powerline/gridstock/internal/transport/rest"
)

// requestsPerMinute caps each client IP on the public surface.
const requestsPerMinute = 300

// Run is the application entry point. It loads configuration, wires
// storage, services, and the HTTP surface, starts the background reorder
// sweep, and serves until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	materials := materialrepo.New(pool)
	suppliers := materialrepo.NewSupplierRepo(pool)
	projects := projectrepo.New(pool)
	schedules := forecastrepo.New(pool)
	usage := usagerepo.New(pool)
	deliveries := deliveryrepo.New(pool)
	warehouse := inventoryrepo.New(pool)
	alerts := alertrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth)
	forecastProvider := forecast.NewProvider(cfg.Forecast, logger)

	authSvc := authservice.NewService(logger, users, jwtManager, cfg.Auth)
	invSvc := inventory.NewService(logger, usage, deliveries, warehouse, alerts,
		materials, suppliers, projects, tx, cfg.Inventory)
	projSvc := project.NewService(logger, projects, schedules, users, materials,
		forecastProvider, invSvc, tx)

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Project:   rest.NewProjectHandler(projSvc, logger),
		Forecast:  rest.NewForecastHandler(projSvc, logger),
		Inventory: rest.NewInventoryHandler(invSvc, warehouse, logger),
		Alert:     rest.NewAlertHandler(invSvc, logger),
		Ordering:  rest.NewOrderingHandler(logger),
		Reference: rest.NewReferenceHandler(materials, suppliers, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(requestsPerMinute),
		middleware.Auth(authSvc),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		invSvc.Run(monitorCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		stopMonitor()
		wg.Wait()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.String("error", err.Error()))
	}

	stopMonitor()
	wg.Wait()
	return nil
}
