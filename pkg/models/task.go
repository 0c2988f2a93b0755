package models

// Task types. The tagged variant determines how the pipeline resolves a post.
const (
	TaskTypeSubredditPost = "subreddit_post"
	TaskTypeFrontPage     = "front_page"
	TaskTypeSpecificPost  = "specific_post"
)

// Task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
	TaskStatusCancelled  = "cancelled"
)

// Task priorities. Higher claims first; FIFO within equal priority.
const (
	PriorityFrontPage  = 1
	PriorityScheduled  = 5
	PriorityCommission = 10
	PriorityBanner     = 20
)

// EnqueueTaskRequest creates one pipeline task.
type EnqueueTaskRequest struct {
	DonationID string
	Type       string
	Subreddit  string
	PostID     string
	Priority   int
	Metadata   map[string]interface{}
}

// TaskSummary is the public view of one task.
type TaskSummary struct {
	ID           string `json:"id"`
	DonationID   string `json:"donation_id,omitempty"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Priority     int    `json:"priority"`
	Attempt      int    `json:"attempt"`
	Subreddit    string `json:"subreddit,omitempty"`
	PostID       string `json:"post_id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Stage        string `json:"stage,omitempty"`
	Progress     int    `json:"progress"`
	ImageURL     string `json:"image_url,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
