package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/x3momentum/internal/api"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/pkg/entity"
	jwtservice "github.com/limbo/x3momentum/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	serv := jwtservice.New("secret")
	uid := entity.UserID(uuid.New())
	valid, err := serv.GenerateToken(uid)
	require.NoError(t, err)

	now := time.Now()
	testCases := []struct {
		Desc  string
		Token string
		Error error
	}{
		{Desc: "valid", Token: valid},
		{Desc: "garbage", Token: "not.a.token", Error: errorvalues.ErrInvalidToken},
		{
			Desc:  "wrong secret",
			Token: signed(t, jwt.SigningMethodHS256, []byte("other"), &api.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid.String(), ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}),
			Error: errorvalues.ErrInvalidToken,
		},
		{
			Desc:  "expired",
			Token: signed(t, jwt.SigningMethodHS256, []byte("secret"), &api.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid.String(), ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))}}),
			Error: errorvalues.ErrInvalidToken,
		},
		{
			Desc:  "no expiration",
			Token: signed(t, jwt.SigningMethodHS256, []byte("secret"), &api.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid.String()}}),
			Error: errorvalues.ErrInvalidToken,
		},
		{
			Desc:  "wrong method",
			Token: signed(t, jwt.SigningMethodHS512, []byte("secret"), &api.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid.String(), ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}),
			Error: errorvalues.ErrInvalidToken,
		},
		{
			Desc:  "no subject",
			Token: signed(t, jwt.SigningMethodHS256, []byte("secret"), &api.JWTClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}),
			Error: errorvalues.ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			claims, err := serv.ParseToken(tc.Token)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid.String(), claims.Subject)
			assert.Equal(t, "authenticated", claims.Role)
		})
	}
}
