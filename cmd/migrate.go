package main

import (
	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-CanteenService/internal/config"
	"github.com/m04kA/SMC-CanteenService/internal/infra/storage/schema"
)

func migrateUp(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Storage.Driver != config.StorageDriverPostgres {
		log.Warn("migrate up: storage driver is %s, nothing to migrate", cfg.Storage.Driver)
		return nil
	}

	db, err := openDB(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return schema.Up(db, log)
}

func migrateDown(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Storage.Driver != config.StorageDriverPostgres {
		log.Warn("migrate down: storage driver is %s, nothing to migrate", cfg.Storage.Driver)
		return nil
	}

	db, err := openDB(c.Context, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	return schema.Down(db, log)
}
