package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides duplicate suppression for the activity pipeline.
// Key format: dedup:<actor>:<type>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact activity has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, actorName, activityType string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(actorName, activityType, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this activity has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, actorName, activityType string, ts time.Time) error {
	return d.client.Set(ctx, d.key(actorName, activityType, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(actorName, activityType string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", actorName, activityType, ts.Unix())
}
