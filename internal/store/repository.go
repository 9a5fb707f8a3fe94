package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nowUTC is the creation timestamp of new rows. Microsecond precision is
// what both PostgreSQL and SQLite round-trip.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// translateExecError maps constraint violations to domain errors.
// onUnique and onForeignKey are returned for the respective classes when set.
func (db *DB) translateExecError(err error, onUnique, onForeignKey error) error {
	switch db.classify(err) {
	case UniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case ForeignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey
		}
	case CheckViolation, NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
