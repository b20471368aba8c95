package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/fittrack/internal/chat"
	"github.com/alexanderramin/fittrack/internal/cli"
	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/logging"
	"github.com/alexanderramin/fittrack/internal/seed"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/alexanderramin/fittrack/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{}
	root := cli.NewRootCmd(app)

	// The TUI owns the terminal, so only one-shot commands also log
	// warnings to stderr.
	logParams := logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogLevel:    cfg.LogLevel,
	}
	if target, _, findErr := root.Find(os.Args[1:]); findErr == nil && target != root {
		logParams.Extra = root.ErrOrStderr()
		logParams.ExtraLevel = "warn"
	}
	logger, logCloser, err := logging.Setup(logParams)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logCloser.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	sessionObserver := tracker.NewLogObserver(logger)

	app.NewSession = func() *tracker.Session {
		return tracker.NewSession(seed.Workouts(time.Now()),
			tracker.WithWeeklyGoal(cfg.WeeklyGoal),
			tracker.WithProgressPolicy(cfg.ProgressPolicy),
			tracker.WithObserver(sessionObserver),
		)
	}
	app.Profiles = service.NewProfileService(uow, service.NewLogUseCaseObserver(logger))
	app.Bot = chat.Bot{Delay: cfg.ChatDelay()}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", "db", cfg.DBPath, "policy", cfg.ProgressPolicy, "weekly_goal", cfg.WeeklyGoal)

	return root.Execute()
}
