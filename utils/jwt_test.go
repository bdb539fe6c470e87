package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateToken("user@example.com", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateToken("user@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	token, err := GenerateToken("user@example.com", time.Hour)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "another_secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateTokenDefaultTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateToken("user@example.com", 0)
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}
