// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the Mesto HTTP API.
//
// [ServerAdapter] decouples callers such as the CLI from the REST protocol.
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401) and read the server's message with
// [MessageFromError].
package adapter

import (
	"context"

	"github.com/MKhiriev/mesto-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the Mesto API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers a user and returns its public shape.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Signin exchanges credentials for a token and stores it via SetToken.
	Signin(ctx context.Context, email, password string) (string, error)

	Me(ctx context.Context) (models.User, error)
	User(ctx context.Context, userID string) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, name, about string) (models.User, error)
	UpdateAvatar(ctx context.Context, avatar string) (models.User, error)

	Cards(ctx context.Context) ([]models.Card, error)
	AddCard(ctx context.Context, name, link string) (models.Card, error)
	DeleteCard(ctx context.Context, cardID string) (models.Card, error)
	Like(ctx context.Context, cardID string) (models.Card, error)
	Dislike(ctx context.Context, cardID string) (models.Card, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
