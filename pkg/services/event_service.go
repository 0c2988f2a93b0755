package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/event"
	"github.com/redditart/commissioner/pkg/events"
)

// EventService manages persisted WebSocket events — catchup queries for
// reconnecting clients and retention cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetCatchupEvents returns events on a channel with id > sinceID, oldest
// first, up to limit. Implements events.CatchupQuerier.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	evts, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(evts))
	for _, evt := range evts {
		out = append(out, events.CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		})
	}
	return out, nil
}

// CleanupTaskEvents removes all persisted events for a finished task.
func (s *EventService) CleanupTaskEvents(ctx context.Context, taskID string) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.TaskIDEQ(taskID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup task events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than the retention TTL. Runs as a
// background sweep in the gateway; clients that fell further behind than
// this reconcile through a REST snapshot instead of catchup.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
