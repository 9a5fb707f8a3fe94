package models

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
