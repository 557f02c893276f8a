package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/tsenart/nap"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DB is a nap connection plus a statement builder using the placeholder
// format of its driver.
type DB struct {
	*nap.DB
	Driver  string
	Builder sq.StatementBuilderType
}

// Open connects to dsn (replicas separated by ";") and migrates the schema.
func Open(driver, dsn string) (*DB, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	switch driver {
	case DriverSQLite, DriverMySQL:
	case DriverPostgres:
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	conn, err := nap.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	// every in-memory sqlite connection is a separate database
	if driver == DriverSQLite && strings.Contains(dsn, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := Migrate(conn.Master(), driver); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{DB: conn, Driver: driver, Builder: builder}, nil
}
