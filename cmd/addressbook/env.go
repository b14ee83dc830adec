package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/jask/addressbook/internal/config"
	"github.com/jask/addressbook/internal/database"
	"github.com/jask/addressbook/internal/database/repository"
	"github.com/jask/addressbook/internal/logging"
	"github.com/jask/addressbook/internal/model"
)

// env is everything a command needs once configuration is resolved.
type env struct {
	cfg    config.Config
	logger *log.Logger
	db     *sql.DB
	model  *model.Model
	closer io.Closer
}

func loadDotenvBestEffort() {
	_ = godotenv.Load()
}

func setup(ctx context.Context) (*env, error) {
	loadDotenvBestEffort()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		_ = closer.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	logger.Info("started", "db", cfg.Database.Path, "archive_dir", cfg.Archive.Dir)
	return &env{
		cfg:    cfg,
		logger: logger,
		db:     db,
		model:  model.New(repository.NewPersonRepo(db), cfg.Archive.Dir),
		closer: closer,
	}, nil
}

// withLogger attaches the logger so commands can find it.
func (e *env) withLogger(ctx context.Context) context.Context {
	return log.WithContext(ctx, e.logger)
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.logger.Error("close db", "err", err)
	}
	_ = e.closer.Close()
}
