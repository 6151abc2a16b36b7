package auth

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute, 30*24*time.Hour)

	t.Run("should round-trip access token subject", func(t *testing.T) {
		token, err := m.GenerateAccess(42)
		require.NoError(t, err)

		claims, err := m.Validate(token, AccessToken)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("should reject refresh token where access is expected", func(t *testing.T) {
		token, err := m.GenerateRefresh(7)
		require.NoError(t, err)

		_, err = m.Validate(token, AccessToken)
		assert.True(t, errors.Is(err, ErrWrongTokenType))

		_, err = m.Validate(token, RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("should reject token signed with another key", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Minute, time.Minute)
		token, err := other.GenerateAccess(1)
		require.NoError(t, err)

		_, err = m.Validate(token, AccessToken)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should reject expired token", func(t *testing.T) {
		past := NewTokenManager("test-secret", time.Minute, time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateAccess(1)
		require.NoError(t, err)

		_, err = m.Validate(token, AccessToken)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token", AccessToken)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestPIN(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)

	assert.NotEqual(t, "1234", hash)
	assert.True(t, CheckPIN(hash, "1234"))
	assert.False(t, CheckPIN(hash, "4321"))
	assert.False(t, CheckPIN("not-a-hash", "1234"))
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}
