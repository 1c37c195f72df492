package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-signup/app"
)

func main() {
	application := app.New() // loads .env automatically

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
