// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/mesto-api/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself; every call is unexpected

	err = Migrate(db, "postgres", nil)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres", nil)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle-7", nil)
	if err == nil || !strings.Contains(err.Error(), "setting dialect") {
		t.Fatalf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=1")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db, "sqlite3", nil); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	for _, table := range []string{"users", "cards", "card_likes"} {
		var name string
		err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s was not created: %v", table, err)
		}
	}

	// applying again is a no-op
	if err = Migrate(db, "sqlite3", nil); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
}

func TestMigrate_LogsThroughAppLogger(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=1")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	if err = Migrate(db, "sqlite3", log); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("expected goose output in the application log")
	}

	for _, line := range lines {
		var entry map[string]any
		if err = json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("goose line is not a JSON log entry: %q", line)
		}
		if entry["component"] != "goose" {
			t.Errorf("expected component=goose, got %v", entry["component"])
		}
	}

	if !strings.Contains(buf.String(), "00002_create_cards.sql") {
		t.Errorf("expected applied migration in log, got: %s", buf.String())
	}
}
