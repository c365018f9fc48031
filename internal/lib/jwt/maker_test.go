package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{
			name:   "admin user",
			userID: "0b5c7a1e-9a55-4c2a-8f0e-2d9c3f1b6e01",
			role:   "admin",
		},
		{
			name:   "regular user",
			userID: "5f1e7c92-1a0b-4d6e-9c3f-7b2a8e4d0c11",
			role:   "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userID, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.userID, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_GenerateToken_EmptyUserID(t *testing.T) {
	maker := NewJWTMaker("secret", time.Hour)

	token, err := maker.GenerateToken("", "user")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, time.Hour)

	validToken, err := maker.GenerateToken("user-1", "user")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createExpiredToken(t, secretKey)},
		{name: "wrong secret key", token: createTokenWithWrongSecret(t)},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "unsigned token", token: createUnsignedToken(t)},
		{name: "token without expiry", token: createTokenWithoutExpiry(t, secretKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewJWTMaker("first_secret_key", time.Hour)
	maker2 := NewJWTMaker("different_secret_key", time.Hour)

	token, err := maker1.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", time.Hour)
	issued := time.Now()
	maker.now = func() time.Time { return issued }

	token, err := maker.GenerateToken("user-1", "user")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	require.NoError(t, err)

	maker.now = func() time.Time { return issued.Add(time.Hour + time.Minute) }
	_, err = maker.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewJWTMaker(secretKey, -time.Hour)
	token, err := maker.GenerateToken("user-1", "user")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewJWTMaker("wrong_secret_key", time.Hour)
	token, err := wrongMaker.GenerateToken("user-1", "user")
	require.NoError(t, err)
	return token
}

func createUnsignedToken(t *testing.T) string {
	claims := CustomClaims{
		UserID: "user-1",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func createTokenWithoutExpiry(t *testing.T, secretKey string) string {
	claims := CustomClaims{UserID: "user-1", Role: "user"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	require.NoError(t, err)
	return token
}
