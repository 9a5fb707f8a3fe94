package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrCardNotFound = errors.New("card not found")

	// ErrForbidden is returned when the caller acts on a card it does not own.
	ErrForbidden = errors.New("forbidden")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// fromStoreError maps repository errors to service errors. The original
// error stays in the chain.
func fromStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, store.ErrCardNotFound):
		return fmt.Errorf("%w: %w", ErrCardNotFound, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return err
}
