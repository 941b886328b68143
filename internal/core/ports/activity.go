package ports

import (
	"context"
	"time"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// ActivityInput is a contact-trail event emitted by the use-case services.
type ActivityInput struct {
	Type        domain.ActivityType
	ActorName   string
	CustomerID  string
	Description string
	Timestamp   time.Time
}

// ActivityRecorder is the enqueue side of the activity pipeline. Services
// emit events through it without waiting for persistence.
type ActivityRecorder interface {
	Enqueue(event ActivityInput)
}

// ActivityService deduplicates and persists contact-trail events.
type ActivityService interface {
	Process(ctx context.Context, event ActivityInput) error
}

// ActivityRepository stores the contact trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	FindRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}
