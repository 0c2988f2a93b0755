// Package events provides real-time task progress delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-process distribution.
//
// Every pipeline stage transition is persisted to the events table and
// broadcast via pg_notify in the same transaction, so any number of gateway
// processes converge on the same stream. Each process runs one NotifyListener
// (a dedicated LISTEN connection) and one ConnectionManager (local WebSocket
// fan-out with per-channel subscriptions and DB-backed catchup).
package events

// Server → client message types. These are the public WebSocket contract.
const (
	// EventTypeTaskCreated announces a new pipeline task (global channel).
	EventTypeTaskCreated = "task_created"

	// EventTypeTaskUpdate carries a stage/status transition for one task.
	// Persisted — replayed by catchup.
	EventTypeTaskUpdate = "task_update"

	// EventTypeGeneralUpdate carries service-level notices (goal completed,
	// queue drained). Transient — NOTIFY only.
	EventTypeGeneralUpdate = "general_update"
)

// GlobalTasksChannel is the wildcard channel carrying events for all tasks.
// The task list page subscribes here.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "task:abc-123" or "tasks"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
