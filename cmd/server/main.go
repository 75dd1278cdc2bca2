// Command server runs the GridStock HTTP API: authentication, project
// forecasting, the stock ledger, reorder alerts, and ordering schedules.
//
// Configuration is read from the file named by CONFIG_PATH, with
// environment variable overrides.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/powerline/gridstock/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
