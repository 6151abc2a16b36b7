// Package session stores admin login sessions server-side.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session ids to admin usernames.
type Store interface {
	Create(ctx context.Context, username string) (string, error)
	Get(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions as Redis keys with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(id string) string { return "admin_session:" + id }

// Create starts a session for username.
func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, redisKey(id), username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

// Get returns the username of a live session.
func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	username, err := s.client.Get(ctx, redisKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return username, nil
}

// Delete ends a session. Unknown ids are ignored.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type entry struct {
	username string
	expires  time.Time
}

// MemoryStore is a single-process session store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = entry{username: username, expires: s.now().Add(s.ttl)}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return "", ErrNotFound
	}
	if !s.now().Before(e.expires) {
		delete(s.sessions, id)
		return "", ErrNotFound
	}
	return e.username, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
