package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the set of live session ids. Keys have no TTL: a
// session lives until logout revokes it, matching the no-expiry semantics of
// the source system.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Register marks a session id as live.
func (s *SessionStore) Register(ctx context.Context, sessionID string) error {
	return s.client.Set(ctx, s.key(sessionID), "1", 0).Err()
}

// Revoke removes a session id. Unknown ids are not an error.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// Active reports whether the session id is still live.
func (s *SessionStore) Active(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
