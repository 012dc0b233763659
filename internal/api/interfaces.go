package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	// Verifies signature and time claims. Errors wrap ErrInvalidToken
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are access token claims of the managed auth provider.
// Subject holds the user id.
type JWTClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
