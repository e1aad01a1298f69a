package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rpggio/corkboard/internal/config"
	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/mirror"
	"github.com/rpggio/corkboard/internal/gateway"
	"github.com/rpggio/corkboard/internal/postgres"
	"github.com/rpggio/corkboard/internal/repository"
	"github.com/rpggio/corkboard/internal/sqlite"
)

// app holds an opened store and the services built over it.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	gateway   *gateway.Gateway
	directory *board.Service
	activity  *activity.Service
	workspace *mirror.Workspace

	closers []func() error
}

// openApp loads configuration, opens the configured store and applies the
// schema. A SQLite store is locked against other corkboard processes.
func openApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	a := &app{cfg: cfg}
	a.logger = a.newLogger()

	store, err := a.openStore()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.gateway = gateway.New(store, gateway.Options{Timeout: cfg.Store.Timeout, Logger: a.logger})
	a.directory = board.NewService(a.gateway, a.logger)
	a.activity = activity.NewService(a.gateway.ActivityLog(), a.logger)
	a.workspace = mirror.NewWorkspace(a.gateway, a.activity, a.logger)
	return a, nil
}

func (a *app) newLogger() *slog.Logger {
	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if a.cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if a.cfg.Log.Path != "" {
		logFile, err := openRotatingLog(a.cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			a.closers = append(a.closers, logFile.Close)
			logWriter = logFile
		}
	}
	return slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(a.cfg.Log.Level),
	}))
}

func (a *app) openStore() (repository.Store, error) {
	switch a.cfg.Store.Driver {
	case "postgres":
		db, err := postgres.New(a.cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		if err := db.Migrate(a.logger); err != nil {
			return nil, err
		}
		return db.Store(), nil
	default:
		path := a.cfg.Store.Path
		if err := ensureDBDir(path); err != nil {
			return nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
		if err := a.lock(path); err != nil {
			return nil, err
		}
		db, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		return db.Store(), nil
	}
}

// lock takes an exclusive lock file next to the database so a single
// process owns the board mirrors.
func (a *app) lock(dbPath string) error {
	if dbPath == ":memory:" || dbPath == "" {
		return nil
	}
	fl := flock.New(dbPath + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("another corkboard process is using " + dbPath)
	}
	a.closers = append(a.closers, fl.Unlock)
	return nil
}

// Close releases everything in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.logger != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// withApp opens the app for the duration of fn.
func withApp(configPath string, fn func(context.Context, *app) error) error {
	a, err := openApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(context.Background(), a)
}
