package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-CanteenService/internal/config"
	"github.com/m04kA/SMC-CanteenService/internal/infra/storage/memory"
	menuRepo "github.com/m04kA/SMC-CanteenService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/SMC-CanteenService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CanteenService/internal/infra/storage/schema"
	"github.com/m04kA/SMC-CanteenService/internal/service/menu"
	"github.com/m04kA/SMC-CanteenService/internal/service/reservations"
	"github.com/m04kA/SMC-CanteenService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanteenService/pkg/logger"
	"github.com/m04kA/SMC-CanteenService/pkg/metrics"
	"github.com/m04kA/SMC-CanteenService/pkg/txmanager"
)

// setup общая часть всех команд: конфигурация и логгер
func setup(c *cli.Context) (*config.Config, *logger.Logger, error) {
	path := c.String(flagConfig)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Configuration loaded from %s (storage=%s)", path, cfg.Storage.Driver)
	return cfg, log, nil
}

// openDB подключается к PostgreSQL и настраивает connection pool
func openDB(ctx context.Context, cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	return db, nil
}

// storages хранилища, выбранные по storage.driver
type storages struct {
	reservations reservations.Storage
	menus        menu.Storage
}

// openStorage выбирает хранилища бронирований и недельного меню по storage.driver.
// Для postgres применяет миграции и оборачивает соединение метриками.
// close нужно вызвать при завершении.
func openStorage(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	m *metrics.Metrics,
	stop <-chan struct{},
) (*storages, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, reservations and menus are lost on restart")
		return &storages{
			reservations: memory.NewStorage(),
			menus:        memory.NewMenuStorage(),
		}, func() {}, nil
	}

	db, err := openDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if err := schema.Up(db, log); err != nil {
		db.Close()
		return nil, nil, err
	}

	wrapped := dbmetrics.WrapWithDefault(db, m, stop)
	if m != nil {
		log.Info("Database metrics collection started")
	}

	return &storages{
		reservations: reservationRepo.NewRepository(wrapped, txmanager.NewTransactionManager(wrapped)),
		menus:        menuRepo.NewRepository(wrapped),
	}, func() { db.Close() }, nil
}
