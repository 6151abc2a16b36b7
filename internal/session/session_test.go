package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and resolve session", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		id, err := s.Create(ctx, "admin")
		require.NoError(t, err)

		_, err = uuid.Parse(id)
		assert.NoError(t, err)

		username, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("should forget deleted session", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		id, _ := s.Create(ctx, "admin")
		require.NoError(t, s.Delete(ctx, id))

		_, err := s.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should expire session", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		s := NewMemoryStore(time.Hour)
		s.now = func() time.Time { return now }
		id, _ := s.Create(ctx, "admin")

		now = now.Add(time.Hour)
		_, err := s.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should reject unknown id", func(t *testing.T) {
		_, err := NewMemoryStore(time.Hour).Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
