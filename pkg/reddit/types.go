// Package reddit is the social platform adapter. It wraps Reddit's OAuth API
// behind the small surface the pipeline, validator, and agents actually use:
// subreddit lookup, listing fetches, single-post lookup, and the two write
// calls (comment, vote). All requests share one token-bucket rate limiter and
// read results are cached briefly.
package reddit

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrNotFound means the subreddit or post does not exist (or is deleted).
	ErrNotFound = errors.New("reddit: not found")

	// ErrForbidden means the target exists but is private or quarantined.
	ErrForbidden = errors.New("reddit: forbidden")
)

// Post is one Reddit submission.
type Post struct {
	ID                string  `json:"id"`
	Fullname          string  `json:"name"` // t3_{id}
	Title             string  `json:"title"`
	SelfText          string  `json:"selftext"`
	Author            string  `json:"author"`
	Subreddit         string  `json:"subreddit"`
	Score             int     `json:"score"`
	UpvoteRatio       float64 `json:"upvote_ratio"`
	NumComments       int     `json:"num_comments"`
	Permalink         string  `json:"permalink"`
	URL               string  `json:"url"`
	Over18            bool    `json:"over_18"`
	Stickied          bool    `json:"stickied"`
	IsSelf            bool    `json:"is_self"`
	CreatedUTC        float64 `json:"created_utc"`
	RemovedByCategory string  `json:"removed_by_category"`
}

// Created returns the submission time.
func (p *Post) Created() time.Time {
	return time.Unix(int64(p.CreatedUTC), 0).UTC()
}

// Age returns how long ago the post was submitted.
func (p *Post) Age() time.Duration {
	return time.Since(p.Created())
}

// Deleted reports whether the post has been removed or its author deleted it.
func (p *Post) Deleted() bool {
	return p.RemovedByCategory != "" || p.Author == "[deleted]" || p.Title == "[deleted by user]"
}

// Subreddit is the about.json summary of a community.
type Subreddit struct {
	Name        string `json:"display_name"`
	Title       string `json:"title"`
	Over18      bool   `json:"over18"`
	Subscribers int    `json:"subscribers"`
	Type        string `json:"subreddit_type"` // public, private, restricted
}

// Comment is one comment on a post.
type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Body   string `json:"body"`
	Score  int    `json:"score"`
}

// thing is Reddit's generic wire wrapper: {"kind": "...", "data": {...}}.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// listing is the data of a kind=Listing thing.
type listing struct {
	Children []thing `json:"children"`
	After    string  `json:"after"`
}

// PostFullname returns the t3-prefixed fullname for a base36 post id.
func PostFullname(postID string) string {
	return "t3_" + postID
}
