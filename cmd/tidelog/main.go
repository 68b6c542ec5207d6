package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harborworks/tidelog/internal/cli"
	"github.com/harborworks/tidelog/internal/db"
	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/repository"
	"github.com/harborworks/tidelog/internal/store"
	"github.com/harborworks/tidelog/internal/tracker"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tidelog/tidelog.db
	dbPath := os.Getenv("TIDELOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tidelog", "tidelog.db")
	}

	logger := newLogger()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	clock := clockwork.NewRealClock()
	entryStore := store.NewEntryStore(database, logger)

	app := &cli.App{
		Directory: domain.DefaultDirectory(),
		Store:     entryStore,
		Tracker:   tracker.New(entryStore, clock),
		Users:     repository.NewSQLiteUserRepo(database),
		Clock:     clock,
		UserID:    resolveUser(),
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds the process logger; TIDELOG_LOG=debug enables detail.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if strings.EqualFold(os.Getenv("TIDELOG_LOG"), "debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveUser returns the acting user: TIDELOG_USER, then the OS login name.
func resolveUser() string {
	if u := os.Getenv("TIDELOG_USER"); u != "" {
		return u
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "admin"
}
