package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/config"
	"github.com/iudanet/tasktracker/internal/crypto"
	"github.com/iudanet/tasktracker/internal/live"
	"github.com/iudanet/tasktracker/internal/server"
	"github.com/iudanet/tasktracker/internal/server/handlers"
	"github.com/iudanet/tasktracker/internal/storage/boltdb"
	"github.com/iudanet/tasktracker/internal/storage/sqlite"
	"github.com/iudanet/tasktracker/internal/tasks"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	flags := pflag.NewFlagSet("tasktracker-server", pflag.ExitOnError)
	showVersion := flags.Bool("version", false, "Show version information")
	cfgFile := flags.String("config", "", "Config file (yaml, toml or json)")
	flags.String("db", "", "Path to the task database")
	flags.String("prefs", "", "Path to the preferences database")
	flags.String("addr", "", "Listen address")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("timezone", "", "IANA time zone for day boundaries")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		printVersion()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, *cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *pflag.FlagSet, cfgFile string) (err error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	v := config.New()
	if err := config.BindFlags(v, flags); err != nil {
		return err
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	logger := config.NewLogger(os.Stdout, cfg.LogLevel, true)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { err = errors.Join(err, db.Close()) }()

	prefs, err := boltdb.New(ctx, cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer func() { err = errors.Join(err, prefs.Close()) }()

	// Ключ подписи выводится из секрета устройства, токены переживают рестарт
	secret, err := prefs.GetOrCreateSecret(ctx)
	if err != nil {
		return err
	}
	signingKey, err := crypto.DeriveSigningKey(secret)
	if err != nil {
		return err
	}

	hub := live.NewHub(cfg.LiveKeepAlive, logger)
	defer hub.Close()

	logger.Info("Starting tasktracker server",
		slog.String("version", Version),
		slog.String("commit", GitCommit),
		slog.String("db", cfg.DBPath),
		slog.String("timezone", loc.String()))

	srv := server.New(cfg.Addr, server.Deps{
		Logger: logger,
		Auth:   auth.NewService(db, prefs, logger),
		Tasks:  tasks.NewService(db, hub, loc, logger),
		DB:     db.DB(),
		JWT: handlers.JWTConfig{
			Secret:         signingKey,
			AccessTokenTTL: cfg.TokenTTL,
		},
		Version: Version,
	})

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Tasktracker Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
