package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/redditpost"
	"github.com/redditart/commissioner/ent/subreddit"
	"github.com/redditart/commissioner/pkg/reddit"
)

// SubredditService owns subreddit and reddit post rows. Subreddits are
// created on first reference and never deleted.
type SubredditService struct {
	client *ent.Client
}

// NewSubredditService creates a new SubredditService
func NewSubredditService(client *ent.Client) *SubredditService {
	return &SubredditService{client: client}
}

// NormalizeName lowercases and strips an optional r/ prefix.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.TrimPrefix(name, "/r/")
	name = strings.TrimPrefix(name, "r/")
	return name
}

// Ensure upserts a subreddit row from its upstream summary and returns it.
func (s *SubredditService) Ensure(ctx context.Context, info *reddit.Subreddit) (*ent.Subreddit, error) {
	name := NormalizeName(info.Name)
	if name == "" {
		return nil, NewValidationError("subreddit", "is required")
	}

	err := s.client.Subreddit.Create().
		SetName(name).
		SetDisplayName(info.Name).
		SetOver18(info.Over18).
		OnConflictColumns(subreddit.FieldName).
		UpdateDisplayName().
		UpdateOver18().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subreddit: %w", err)
	}

	return s.GetByName(ctx, name)
}

// GetByName fetches a subreddit row.
func (s *SubredditService) GetByName(ctx context.Context, name string) (*ent.Subreddit, error) {
	sub, err := s.client.Subreddit.Query().
		Where(subreddit.NameEQ(NormalizeName(name))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}
	return sub, nil
}

// List returns all known subreddits alphabetically.
func (s *SubredditService) List(ctx context.Context) ([]*ent.Subreddit, error) {
	subs, err := s.client.Subreddit.Query().
		Order(ent.Asc(subreddit.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subreddits: %w", err)
	}
	return subs, nil
}

// RecordPost upserts the reddit post a task resolved to. Rows are retained
// so the selection policy can exclude recently used posts.
func (s *SubredditService) RecordPost(ctx context.Context, post *reddit.Post, commentSummary string) (*ent.RedditPost, error) {
	create := s.client.RedditPost.Create().
		SetID(post.ID).
		SetTitle(post.Title).
		SetSubreddit(NormalizeName(post.Subreddit)).
		SetScore(post.Score).
		SetNumComments(post.NumComments).
		SetOver18(post.Over18).
		SetPermalink(post.Permalink)
	if post.SelfText != "" {
		create.SetBody(post.SelfText)
	}
	if commentSummary != "" {
		create.SetCommentSummary(commentSummary)
	}

	err := create.
		OnConflictColumns(redditpost.FieldID).
		UpdateScore().
		UpdateNumComments().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert reddit post: %w", err)
	}

	rp, err := s.client.RedditPost.Get(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload reddit post: %w", err)
	}
	return rp, nil
}

// MarkPostUsed stamps last_used_at, excluding the post from selection for
// the reuse window.
func (s *SubredditService) MarkPostUsed(ctx context.Context, postID string) error {
	err := s.client.RedditPost.UpdateOneID(postID).
		SetLastUsedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark post used: %w", err)
	}
	return nil
}

// RecentlyUsedPostIDs returns ids of posts this system used within the
// window. The selection policy filters these out.
func (s *SubredditService) RecentlyUsedPostIDs(ctx context.Context, window time.Duration) (map[string]bool, error) {
	cutoff := time.Now().Add(-window)
	posts, err := s.client.RedditPost.Query().
		Where(redditpost.LastUsedAtGTE(cutoff)).
		Select(redditpost.FieldID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recently used posts: %w", err)
	}

	used := make(map[string]bool, len(posts))
	for _, p := range posts {
		used[p.ID] = true
	}
	return used, nil
}
