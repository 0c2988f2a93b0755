package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes task events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY;
// transient events are broadcast via NOTIFY only. pg_notify is transactional,
// so a persisted event and its broadcast commit atomically — subscribers never
// see an event whose row was rolled back.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTaskCreated persists a task_created event to the global channel.
func (p *EventPublisher) PublishTaskCreated(ctx context.Context, payload TaskCreatedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskCreatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, GlobalTasksChannel, payloadJSON)
}

// PublishTaskUpdate persists a task_update event to the task channel and
// broadcasts a transient copy to the global tasks channel. Both publishes are
// best-effort: if the persistent one fails, the transient one is still
// attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishTaskUpdate(ctx context.Context, payload TaskUpdatePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskUpdatePayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.TaskID, TaskChannel(payload.TaskID), payloadJSON); err != nil {
		slog.Warn("Failed to publish task update to task channel",
			"task_id", payload.TaskID, "stage", payload.Data.Stage, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish task update to global channel",
			"task_id", payload.TaskID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishGeneralUpdate broadcasts a transient service-level notice to the
// global tasks channel (no DB persistence).
func (p *EventPublisher) PublishGeneralUpdate(ctx context.Context, payload GeneralUpdatePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GeneralUpdatePayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalTasksChannel, payloadJSON)
}

// persistAndNotify persists a pre-marshaled event and broadcasts via NOTIFY
// in a single transaction (pg_notify is held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, taskID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (task_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		taskID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY carries db_event_id so clients can track their catchup cursor.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persistence.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope with only the
// routing fields the client needs to fetch the complete event from the DB.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		TaskID    string `json:"task_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
