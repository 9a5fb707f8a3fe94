package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested identity
	// or email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCardNotFound is returned when no card matches the requested identity
	// (or, for deletion, the identity and owner pair).
	ErrCardNotFound = errors.New("card was not found")

	// ErrEmailAlreadyExists is returned when an INSERT violates the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrConstraintViolation is returned when a row violates a CHECK or
	// NOT NULL constraint of the schema.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
