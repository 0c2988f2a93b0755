package events

// TaskData is the inner payload shared by task envelope messages.
type TaskData struct {
	Status    string `json:"status"`              // pending, in_progress, completed, failed, cancelled
	Stage     string `json:"stage,omitempty"`     // pipeline stage name
	Message   string `json:"message,omitempty"`   // human-readable progress line
	Progress  int    `json:"progress"`            // 0..100
	Timestamp int64  `json:"timestamp"`           // unix seconds
	ImageURL  string `json:"image_url,omitempty"` // present once image_stamped has run
}

// Envelope is the server → client message shape for all task events.
type Envelope struct {
	Type   string   `json:"type"` // task_update, task_created, general_update
	TaskID string   `json:"task_id,omitempty"`
	Data   TaskData `json:"data"`
}

// TaskCreatedPayload announces a newly enqueued task on the global channel.
type TaskCreatedPayload struct {
	Type      string `json:"type"` // always EventTypeTaskCreated
	TaskID    string `json:"task_id"`
	TaskType  string `json:"task_type"` // subreddit_post, front_page, specific_post
	Subreddit string `json:"subreddit,omitempty"`
	Priority  int    `json:"priority"`
	Data      TaskData `json:"data"`
}

// TaskUpdatePayload is the persisted per-stage progress message.
type TaskUpdatePayload struct {
	Type   string   `json:"type"` // always EventTypeTaskUpdate
	TaskID string   `json:"task_id"`
	Data   TaskData `json:"data"`
}

// GeneralUpdatePayload is a transient service-level notice.
type GeneralUpdatePayload struct {
	Type    string `json:"type"` // always EventTypeGeneralUpdate
	Kind    string `json:"kind"` // e.g. "goal_completed"
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
	Timestamp int64 `json:"timestamp"`
}
