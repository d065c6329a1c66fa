package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hance08/cybank/internal/config"
	"github.com/hance08/cybank/internal/service"
	"github.com/hance08/cybank/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Config  *config.Config
	Logger  *pterm.Logger
}

// NewApp builds the configured store and the services on top of it.
// Both backends are in-memory; cleanup releases the SQLite handle.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger := pterm.DefaultLogger.
		WithWriter(os.Stderr).
		WithLevel(service.ParseLogLevel(cfg.Log.Level))

	repo, err := openStore(cfg.Storage.Backend, migrationFS)
	if err != nil {
		return nil, nil, err
	}

	svc, err := service.NewService(repo, cfg, logger)
	if err != nil {
		repo.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := repo.Close(); err != nil {
			fmt.Printf("Error closing store: %v\n", err)
		}
	}

	logger.Debug("store ready", logger.Args("backend", cfg.Storage.Backend))

	return &App{
		Service: svc,
		Store:   repo,
		Config:  cfg,
		Logger:  logger,
	}, cleanup, nil
}

func openStore(backend string, migrationFS fs.FS) (store.Repository, error) {
	switch backend {
	case "", config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(store.MemoryDSN, migrationFS)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend '%s' (valid: %s, %s)",
			backend, config.BackendMemory, config.BackendSQLite)
	}
}
