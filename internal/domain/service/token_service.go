package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session claims issued by the auth service.
// Subject carries the Discord user id.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService validates session tokens.
type TokenService interface {
	// ValidateToken parses and verifies a session token.
	ValidateToken(tokenString string) (*Claims, error)
}
