// Package schema SQL-миграции схемы, встроенные в бинарник.
package schema

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("schema: migration failed")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все неприменённые миграции. Повторный запуск ничего не делает.
func Up(db *sql.DB, log Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("schema: already up to date")
			return nil
		}
		return fmt.Errorf("%w: Up: %v", ErrMigrate, err)
	}

	version, dirty, _ := m.Version()
	log.Info("schema: migrated to version=%d dirty=%t", version, dirty)
	return nil
}

// Down откатывает последнюю миграцию
func Down(db *sql.DB, log Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, migrate.ErrNilVersion) {
			log.Info("schema: nothing to roll back")
			return nil
		}
		return fmt.Errorf("%w: Down: %v", ErrMigrate, err)
	}

	log.Info("schema: rolled back one migration")
	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: open source: %v", ErrMigrate, err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: open driver: %v", ErrMigrate, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: init: %v", ErrMigrate, err)
	}
	return m, nil
}
