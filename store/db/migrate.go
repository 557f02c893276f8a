package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed schema/*.sql
var embedFiles embed.FS

// Migrate runs the embedded schema migrations for the given driver.
func Migrate(db *sql.DB, driver string) error {
	d, err := iofs.New(embedFiles, "schema")
	if err != nil {
		return err
	}

	target, err := migrationDriver(db, driver)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", d, driver, target)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func migrationDriver(db *sql.DB, driver string) (database.Driver, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.WithInstance(db, &sqlite.Config{})
	case DriverMySQL:
		return mysql.WithInstance(db, &mysql.Config{})
	case DriverPostgres:
		return postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migration driver for %q", driver)
	}
}
