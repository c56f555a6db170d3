package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, key []byte, claims *UserClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	claims := &UserClaims{
		UserID: 7,
		Email:  "seller@example.com",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	parsed, err := ValidateToken(signToken(t, signingKey, claims))
	require.NoError(t, err)
	require.Equal(t, uint(7), parsed.UserID)
	require.Equal(t, "seller@example.com", parsed.Email)
	require.Equal(t, "ADMIN", parsed.Role)
}

func TestValidateTokenWrongKey(t *testing.T) {
	claims := &UserClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	_, err := ValidateToken(signToken(t, []byte("someoneelseskey"), claims))
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	claims := &UserClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	_, err := ValidateToken(signToken(t, signingKey, claims))
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}
