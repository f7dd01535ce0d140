package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/employee-table/internal/config"
	"github.com/JonMunkholm/employee-table/internal/logging"
	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/roster"
	"github.com/JonMunkholm/employee-table/internal/tui"
	"github.com/JonMunkholm/employee-table/internal/widget"
)

func main() {
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	// The program owns the terminal; logs go to a file.
	logFile, err := tea.LogToFile(cfg.Logging.File, "tui")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logging.SetupTo(logFile, cfg.Logging.Level, cfg.Logging.Format)

	notes := notify.NewPresenter(cfg.Notify.TTL,
		notify.WithLogger(slog.Default().With("component", "notify")),
	)
	table := widget.New(roster.NewGrid(cfg.Table.Seed), notes,
		widget.WithLogger(slog.Default().With("component", "widget")),
	)

	slog.Info("tui starting", "rows", table.Grid.Len())
	if _, err := tea.NewProgram(tui.New(table, notes), tea.WithAltScreen()).Run(); err != nil {
		slog.Error("tui stopped", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
