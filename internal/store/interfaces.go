// Package store is the data access layer: users, cards and the likes
// relation kept in PostgreSQL or SQLite.
package store

import (
	"context"

	"github.com/MKhiriev/mesto-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with identity and creation
	// time assigned. Returns ErrEmailAlreadyExists for a taken email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns the public shape of a user or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// FindUserByEmail returns the user including the password hash or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser writes the non-nil fields of update and returns the new
	// state of the user or ErrUserNotFound.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// CardRepository persists cards and their likes.
type CardRepository interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	// CreateCard stores a new card and returns it with identity, creation
	// time and an empty likes set.
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	// FindCardByID returns the card with its likes or ErrCardNotFound.
	FindCardByID(ctx context.Context, id string) (models.Card, error)
	// DeleteCard removes the card owned by ownerID. Returns ErrCardNotFound
	// when no such card exists.
	DeleteCard(ctx context.Context, id, ownerID string) error
	// AddLike puts userID into the likes set of the card (idempotent).
	AddLike(ctx context.Context, cardID, userID string) (models.Card, error)
	// RemoveLike removes userID from the likes set of the card (no-op when
	// absent).
	RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error)
}

// IDGenerator produces identities for new rows.
type IDGenerator interface {
	Generate() string
}
