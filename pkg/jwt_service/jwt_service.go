package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/x3momentum/internal/api"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
)

var (
	tokenTTL = time.Hour
)

type JWTService struct {
	secret []byte
	parser *jwt.Parser
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

// GenerateToken issues a token in the provider's format. Used by tests and local tooling.
func (s *JWTService) GenerateToken(uid entity.UserID) (string, error) {
	now := time.Now()
	claims := &api.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: "authenticated",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
