package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhmai/journal/internal/entities"
)

var testSecret = []byte("test-secret-key-for-token-signing")

func TestSignToken(t *testing.T) {
	t.Run("token carries the readable user and role claims", func(t *testing.T) {
		token := SignToken("alice", entities.UserRoleAdmin, time.Hour, testSecret)

		assert.True(t, strings.HasPrefix(token, "user:alice|role:admin|"))
		assert.Contains(t, token, "role:admin")
		assert.Contains(t, token, "|sig:")
	})

	t.Run("non-admin tokens never contain the admin claim", func(t *testing.T) {
		token := SignToken("bob", entities.UserRoleUser, time.Hour, testSecret)
		assert.NotContains(t, token, "role:admin")
	})
}

func TestVerifyToken(t *testing.T) {
	t.Run("round-trips claims", func(t *testing.T) {
		token := SignToken("alice", entities.UserRoleAdmin, time.Hour, testSecret)

		claims, err := VerifyToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, entities.UserRoleAdmin, claims.Role)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("rejects a tampered role claim", func(t *testing.T) {
		token := SignToken("bob", entities.UserRoleUser, time.Hour, testSecret)
		forged := strings.Replace(token, "role:user", "role:admin", 1)

		_, err := VerifyToken(forged, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects the historic unsigned format", func(t *testing.T) {
		_, err := VerifyToken("user:alice|role:admin", testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		token := SignToken("alice", entities.UserRoleAdmin, time.Hour, []byte("other-secret"))
		_, err := VerifyToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token := SignToken("alice", entities.UserRoleAdmin, -time.Minute, testSecret)
		_, err := VerifyToken(token, testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := VerifyToken("definitely not a token", testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
