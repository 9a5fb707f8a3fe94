package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the constraint class of a failed statement.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a known constraint violation.
	Unclassified ErrorClassification = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

// ErrorClassifier maps driver specific errors to an [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. If err is nil or is not a
// PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the class 23 (integrity constraint violation) PostgreSQL error codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite using the
// extended result codes reported by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}

	return Unclassified
}
