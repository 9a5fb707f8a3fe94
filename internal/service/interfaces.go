// Package service holds the business rules of the application: registration
// and sign-in, profiles, cards and likes.
package service

import (
	"context"

	"github.com/MKhiriev/mesto-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, verifies credentials and issues tokens.
type AuthService interface {
	// Register fills in profile defaults, hashes the password and stores the
	// user. Returns ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, user models.User) (models.User, error)
	// Login returns the user owning the credentials or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and updates user profiles.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID, name, about string) (models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) (models.User, error)
}

// CardService manages cards and their likes on behalf of a user.
type CardService interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	// DeleteCard removes a card owned by userID and returns its last state.
	// Returns ErrForbidden when userID is not the owner.
	DeleteCard(ctx context.Context, cardID, userID string) (models.Card, error)
	LikeCard(ctx context.Context, cardID, userID string) (models.Card, error)
	DislikeCard(ctx context.Context, cardID, userID string) (models.Card, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
}

// Pinger is implemented by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}
