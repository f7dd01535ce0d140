package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/employee-table/internal/config"
	"github.com/JonMunkholm/employee-table/internal/logging"
	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/roster"
	"github.com/JonMunkholm/employee-table/internal/web"
	"github.com/JonMunkholm/employee-table/internal/widget"
)

func main() {
	// Overload lets a local .env win over the shell environment.
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"notify_ttl", cfg.Notify.TTL,
		"seed", cfg.Table.Seed,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	notes := notify.NewPresenter(cfg.Notify.TTL,
		notify.WithLogger(slog.Default().With("component", "notify")),
	)
	table := widget.New(roster.NewGrid(cfg.Table.Seed), notes,
		widget.WithLogger(slog.Default().With("component", "widget")),
	)
	slog.Info("table ready", "rows", table.Grid.Len(), "columns", table.Grid.Columns())

	server := web.NewServer(table, notes, cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
