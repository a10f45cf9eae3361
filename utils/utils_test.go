package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "alice", "MODERATOR;WRITER", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "MODERATOR;WRITER", claims.Roles)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "bob", "DEFAULT", "right", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong")
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(1, "bob", "DEFAULT", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
