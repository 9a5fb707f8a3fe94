// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotAuthenticated    = errors.New("no token: sign in first")
)

// APIError is a non-2xx response of the API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the "message" field of the response body, or the raw body
	// when it is not JSON.
	Message string

	kind error
}

func (e *APIError) Error() string {
	if e.kind == nil {
		return e.Message
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// MessageFromError returns the server's message carried by err, or err's
// text when err did not come from the API.
func MessageFromError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
