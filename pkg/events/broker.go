package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/progressevent"
)

// Stage percent mapping. Progress is monotonic per task; each stage has a
// fixed completion percentage.
var stagePercent = map[string]int{
	"post_fetching":            0,
	"post_fetched":             15,
	"product_designed":         30,
	"image_generation_started": 45,
	"image_generated":          70,
	"image_stamped":            80,
	"commission_complete":      100,
}

// StagePercent returns the fixed progress percentage for a pipeline stage.
// Stages without a fixed mapping (retrying, failed, cancelled) return -1 and
// callers carry forward the last known percent.
func StagePercent(stage string) int {
	if p, ok := stagePercent[stage]; ok {
		return p
	}
	return -1
}

// ProgressBroker records pipeline stage transitions and fans them out to
// WebSocket subscribers. Persistence (progress_events row) happens first so a
// crashed broadcast never loses history; the broadcast itself is best-effort.
type ProgressBroker struct {
	client    *ent.Client
	publisher *EventPublisher
}

// NewProgressBroker creates a broker over the given ent client and publisher.
func NewProgressBroker(client *ent.Client, publisher *EventPublisher) *ProgressBroker {
	return &ProgressBroker{client: client, publisher: publisher}
}

// Progress is one recorded stage transition.
type Progress struct {
	TaskID    string    `json:"task_id"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	Percent   int       `json:"percent"`
	CreatedAt time.Time `json:"created_at"`
}

// Record persists a stage transition and broadcasts it. The percent is
// derived from the stage when the stage has a fixed mapping; otherwise the
// caller-provided percent is used.
func (b *ProgressBroker) Record(ctx context.Context, taskID, status, stage, message string, percent int) error {
	if p := StagePercent(stage); p >= 0 {
		percent = p
	}

	_, err := b.client.ProgressEvent.Create().
		SetTaskID(taskID).
		SetStage(progressevent.Stage(stage)).
		SetMessage(message).
		SetPercent(percent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record progress event: %w", err)
	}

	payload := TaskUpdatePayload{
		Type:   EventTypeTaskUpdate,
		TaskID: taskID,
		Data: TaskData{
			Status:    status,
			Stage:     stage,
			Message:   message,
			Progress:  percent,
			Timestamp: time.Now().Unix(),
		},
	}
	if err := b.publisher.PublishTaskUpdate(ctx, payload); err != nil {
		// History is already durable; subscribers recover via catchup.
		slog.Warn("Progress broadcast failed", "task_id", taskID, "stage", stage, "error", err)
	}
	return nil
}

// Snapshot returns the most recent recorded transition for a task, or nil if
// none exist yet.
func (b *ProgressBroker) Snapshot(ctx context.Context, taskID string) (*Progress, error) {
	evt, err := b.client.ProgressEvent.Query().
		Where(progressevent.TaskID(taskID)).
		Order(ent.Desc(progressevent.FieldCreatedAt), ent.Desc(progressevent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query progress snapshot: %w", err)
	}
	return &Progress{
		TaskID:    evt.TaskID,
		Stage:     string(evt.Stage),
		Message:   evt.Message,
		Percent:   evt.Percent,
		CreatedAt: evt.CreatedAt,
	}, nil
}

// History returns all recorded transitions for a task in chronological order.
func (b *ProgressBroker) History(ctx context.Context, taskID string) ([]Progress, error) {
	evts, err := b.client.ProgressEvent.Query().
		Where(progressevent.TaskID(taskID)).
		Order(ent.Asc(progressevent.FieldCreatedAt), ent.Asc(progressevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress history: %w", err)
	}
	out := make([]Progress, 0, len(evts))
	for _, evt := range evts {
		out = append(out, Progress{
			TaskID:    evt.TaskID,
			Stage:     string(evt.Stage),
			Message:   evt.Message,
			Percent:   evt.Percent,
			CreatedAt: evt.CreatedAt,
		})
	}
	return out, nil
}
