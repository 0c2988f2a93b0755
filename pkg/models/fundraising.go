package models

// GoalProgress is the fundraising state of one subreddit.
type GoalProgress struct {
	Subreddit     string `json:"subreddit"`
	GoalAmount    int64  `json:"goal_amount"`
	CurrentAmount int64  `json:"current_amount"`
	Status        string `json:"status"` // active, completed
	CompletedAt   string `json:"completed_at,omitempty"`
}

// OverallProgress aggregates fundraising across all subreddits.
type OverallProgress struct {
	TotalRaised    int64 `json:"total_raised"`
	GoalsCompleted int   `json:"goals_completed"`
	GoalsActive    int   `json:"goals_active"`
	DonationCount  int   `json:"donation_count"`
}

// SubredditDonations groups a community's donations for the rollup view.
type SubredditDonations struct {
	Subreddit  string            `json:"subreddit"`
	Commission *DonationSummary  `json:"commission,omitempty"`
	Support    []DonationSummary `json:"support"`
}

// ValidationResult is the commission validator's answer.
type ValidationResult struct {
	Valid     bool           `json:"valid"`
	Subreddit string         `json:"subreddit,omitempty"`
	PostID    string         `json:"post_id,omitempty"`
	PostTitle string         `json:"post_title,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Ratings   map[string]any `json:"ratings,omitempty"`
}

// ProductSummary is the public view of one generated product.
type ProductSummary struct {
	ID            string `json:"id"`
	TaskID        string `json:"task_id"`
	DonationID    string `json:"donation_id,omitempty"`
	PostID        string `json:"post_id,omitempty"`
	Theme         string `json:"theme"`
	ImageTitle    string `json:"image_title"`
	ImageURL      string `json:"image_url"`
	ProductURL    string `json:"product_url"`
	TemplateID    string `json:"template_id"`
	Model         string `json:"model,omitempty"`
	PromptVersion string `json:"prompt_version,omitempty"`
	ImageQuality  string `json:"image_quality"`
	CreatedAt     string `json:"created_at"`
}
