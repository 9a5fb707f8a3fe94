package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/migrations"
)

// Dialects understood by [migrations.Migrate].
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// ErrUnsupportedDSN is returned when the DSN scheme selects no known driver.
var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// DB is a database handle together with the SQL flavour it speaks.
type DB struct {
	*sql.DB
	dialect         string
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN:
//   - postgres:// and postgresql:// use the pgx driver;
//   - sqlite://, file: and :memory: use the sqlite3 driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the SQL dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// classify maps a driver error to a constraint class. Connections built
// without a classifier report every error as unclassified.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return Unclassified
	}
	return db.errorClassifier.Classify(err)
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
