// Command sweep runs one reorder-point sweep against the warehouse and
// exits. It recomputes each material's reorder point from trailing
// consumption and re-evaluates every qualifying material/project pair,
// raising or refreshing reorder alerts where stock sits below threshold.
// It is intended to be invoked by an external cron job as an alternative
// to the in-process monitor.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/powerline/gridstock/internal/adapter/postgres"
	alertrepo "github.com/powerline/gridstock/internal/adapter/postgres/alert"
	deliveryrepo "github.com/powerline/gridstock/internal/adapter/postgres/delivery"
	inventoryrepo "github.com/powerline/gridstock/internal/adapter/postgres/inventory"
	materialrepo "github.com/powerline/gridstock/internal/adapter/postgres/material"
	projectrepo "github.com/powerline/gridstock/internal/adapter/postgres/project"
	usagerepo "github.com/powerline/gridstock/internal/adapter/postgres/usage"
	"github.com/powerline/gridstock/internal/app"
	"github.com/powerline/gridstock/internal/config"
	"github.com/powerline/gridstock/internal/service/inventory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := inventory.NewService(
		logger,
		usagerepo.New(pool),
		deliveryrepo.New(pool),
		inventoryrepo.New(pool),
		alertrepo.New(pool),
		materialrepo.New(pool),
		materialrepo.NewSupplierRepo(pool),
		projectrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Inventory,
	)

	if err := svc.SweepOnce(ctx); err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sweep completed")
}
