package api

// ValidateCommissionBody is the request body for POST /api/commissions/validate.
type ValidateCommissionBody struct {
	CommissionType string `json:"commission_type"`
	Subreddit      string `json:"subreddit,omitempty"`
	PostIDOrURL    string `json:"post_id_or_url,omitempty"`
}

// PaymentIntentBody is the request body for creating or updating a payment
// intent. Donation fields travel to the gateway as intent metadata and come
// back on the webhook, so admission needs no session state.
type PaymentIntentBody struct {
	AmountUSD      string `json:"amount_usd"`
	DonationType   string `json:"donation_type"` // commission, support
	CommissionType string `json:"commission_type,omitempty"`
	PostIDOrURL    string `json:"post_id_or_url,omitempty"`
	Subreddit      string `json:"subreddit,omitempty"`
	Message        string `json:"message,omitempty"`
	RedditUsername string `json:"reddit_username,omitempty"`
	IsAnonymous    bool   `json:"is_anonymous"`
}

// ValidateSubredditBody is the request body for POST /api/subreddits/validate.
type ValidateSubredditBody struct {
	Subreddit string `json:"subreddit"`
}
