package store

import "github.com/MKhiriev/mesto-api/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	CardRepository CardRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, ids, log),
		CardRepository: NewCardRepository(db, ids, log),
	}
}
