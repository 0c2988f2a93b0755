package api

import (
	"github.com/redditart/commissioner/pkg/database"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/queue"
)

// IntentResponse is returned by the payment-intent endpoints.
type IntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// WebhookResponse acknowledges a processed webhook.
type WebhookResponse struct {
	Received bool   `json:"received"`
	TaskID   string `json:"task_id,omitempty"`
}

// DonationListResponse is returned by GET /api/donations.
type DonationListResponse struct {
	Donations []models.DonationSummary `json:"donations"`
	Total     int                      `json:"total"`
}

// CancelResponse is returned by POST /api/tasks/:id/cancel.
type CancelResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// TaskListResponse is returned by GET /api/tasks.
type TaskListResponse struct {
	Tasks []models.TaskSummary `json:"tasks"`
	Total int                  `json:"total"`
}

// ProductListResponse is returned by GET /api/generated_products.
type ProductListResponse struct {
	Products []models.ProductSummary `json:"products"`
	Total    int                     `json:"total"`
}

// FundraisingResponse is returned by GET /api/fundraising/progress.
type FundraisingResponse struct {
	Overall    *models.OverallProgress `json:"overall"`
	Subreddits []*models.GoalProgress  `json:"subreddits"`
}

// SubredditSummary is the public view of one registered subreddit.
type SubredditSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Over18      bool   `json:"over_18"`
}

// HealthCheck is one named component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Checks     map[string]HealthCheck `json:"checks"`
}
