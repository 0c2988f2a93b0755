// Package models defines the request and result types shared between the
// HTTP layer, the services, and the queue.
package models

// Commission types.
const (
	CommissionRandomRandom    = "random_random"
	CommissionRandomSubreddit = "random_subreddit"
	CommissionSpecificPost    = "specific_post"
	CommissionNone            = "none"
)

// Donation types.
const (
	DonationTypeCommission = "commission"
	DonationTypeSupport    = "support"
)

// Donation sources.
const (
	DonationSourceStripe = "stripe"
	DonationSourceManual = "manual"
)

// UpsertDonationRequest carries the fields written on webhook admission,
// keyed by payment-intent id.
type UpsertDonationRequest struct {
	PaymentIntentID string
	Amount          int64
	Currency        string
	Status          string
	Type            string
	CommissionType  string
	PostID          string
	Subreddit       string
	Message         string
	RedditHandle    string
	IsAnonymous     bool
	Tier            string
	Source          string
}

// DonationSummary is the public view of one donation.
type DonationSummary struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	Type           string `json:"type"`
	CommissionType string `json:"commission_type,omitempty"`
	Subreddit      string `json:"subreddit,omitempty"`
	Message        string `json:"message,omitempty"`
	RedditHandle   string `json:"reddit_handle,omitempty"`
	IsAnonymous    bool   `json:"is_anonymous"`
	Tier           string `json:"tier,omitempty"`
	CreatedAt      string `json:"created_at"`
}
