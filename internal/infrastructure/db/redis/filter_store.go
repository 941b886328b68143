package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// FilterStore persists each user's list-view filter state as a JSON value.
// A missing or corrupt entry falls back to the default filter; storage
// problems never surface to the user through this path.
type FilterStore struct {
	client *redis.Client
}

func NewFilterStore(client *redis.Client) *FilterStore {
	return &FilterStore{client: client}
}

func (s *FilterStore) Get(ctx context.Context, userID string) (domain.Filter, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultFilter(), nil
		}
		return domain.DefaultFilter(), fmt.Errorf("load filter state: %w", err)
	}

	var f domain.Filter
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		// Corrupt entry: fall back rather than fail the list view.
		return domain.DefaultFilter(), nil
	}
	return f.Normalize(), nil
}

func (s *FilterStore) Save(ctx context.Context, userID string, f domain.Filter) error {
	raw, err := json.Marshal(f.Normalize())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(userID), raw, 0).Err()
}

func (s *FilterStore) key(userID string) string {
	return "filters:" + userID
}
