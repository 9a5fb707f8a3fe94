package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued JWT.
//
// UserID is serialized as "_id" so that the payload decodes to
// { _id, iss, exp, iat } on the client side.
type TokenClaims struct {
	UserID string `json:"_id"`

	jwt.RegisteredClaims
}

// Token is the result of issuing or verifying a JWT.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the identity the token was issued for.
	UserID string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
