package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// FilterStore persists each user's active list-view filter state. A missing
// entry is not an error: Get falls back to domain.DefaultFilter.
type FilterStore interface {
	Get(ctx context.Context, userID string) (domain.Filter, error)
	Save(ctx context.Context, userID string, f domain.Filter) error
}

// SessionStore tracks which session ids are live. Sessions have no expiry;
// only logout removes them.
type SessionStore interface {
	Register(ctx context.Context, sessionID string) error
	Revoke(ctx context.Context, sessionID string) error
	Active(ctx context.Context, sessionID string) (bool, error)
}
