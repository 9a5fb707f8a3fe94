package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/mesto-api/internal/config"
	"github.com/MKhiriev/mesto-api/internal/logger"
)

const (
	testUserID  = "5f8d0d55b54764421b7156c9"
	testOwnerID = "5f8d0d55b54764421b7156ca"
	testCardID  = "5f8d0d55b54764421b7156cb"
)

// sequenceIDs hands out the configured identities in order.
type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:              conn,
		dialect:         DialectPostgres,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassifier: NewPostgresErrorClassifier(),
		logger:          logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func configDB(dsn string) config.DB {
	return config.DB{DSN: dsn}
}
