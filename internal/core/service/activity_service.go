package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/leadcrm/crm-system/internal/api/metrics"
	"github.com/leadcrm/crm-system/internal/core/domain"
	"github.com/leadcrm/crm-system/internal/core/ports"
)

// DedupChecker abstracts the duplicate-suppression store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, actorName string, activityType string, ts time.Time) (bool, error)
	Mark(ctx context.Context, actorName string, activityType string, ts time.Time) error
}

type activityService struct {
	activities ports.ActivityRepository
	dedup      DedupChecker
	log        zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(activities ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{activities: activities, dedup: dedup, log: log}
}

// Process deduplicates and persists a single contact-trail event.
func (s *activityService) Process(ctx context.Context, event ports.ActivityInput) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event.ActorName, string(event.Type), event.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("actor", event.ActorName).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.ActivitiesDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("actor", event.ActorName).Str("type", string(event.Type)).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivitiesDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a retry after a partial failure cannot double-record.
	if markErr := s.dedup.Mark(ctx, event.ActorName, string(event.Type), event.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("actor", event.ActorName).Msg("failed to set dedup key")
	}

	activity := &domain.Activity{
		ID:          uuid.NewString(),
		Type:        event.Type,
		ActorName:   event.ActorName,
		CustomerID:  event.CustomerID,
		Description: event.Description,
		Timestamp:   event.Timestamp,
	}
	if err := s.activities.Insert(ctx, activity); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(string(event.Type)).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(string(event.Type)).Observe(time.Since(start).Seconds())
	return nil
}
