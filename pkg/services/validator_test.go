package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/reddit"
	testdb "github.com/redditart/commissioner/test/database"
)

// fakePlatform is an in-memory socialPlatform.
type fakePlatform struct {
	subreddits map[string]*reddit.Subreddit
	posts      map[string]*reddit.Post
	hot        map[string][]reddit.Post
	err        error
}

func (f *fakePlatform) AboutSubreddit(_ context.Context, name string) (*reddit.Subreddit, error) {
	if f.err != nil {
		return nil, f.err
	}
	if sub, ok := f.subreddits[name]; ok {
		return sub, nil
	}
	return nil, reddit.ErrNotFound
}

func (f *fakePlatform) GetPost(_ context.Context, postID string) (*reddit.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.posts[postID]; ok {
		return p, nil
	}
	return nil, reddit.ErrNotFound
}

func (f *fakePlatform) Hot(_ context.Context, subreddit string, _ int) ([]reddit.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hot[subreddit], nil
}

type fakeScorer struct {
	rating *llm.Rating
	err    error
}

func (f *fakeScorer) Rate(context.Context, string, string, string) (*llm.Rating, error) {
	return f.rating, f.err
}

func newValidator(t *testing.T, platform *fakePlatform, scorer postScorer) (*CommissionValidator, context.Context) {
	t.Helper()
	client := testdb.NewTestClient(t)
	subs := NewSubredditService(client.Client)
	return NewCommissionValidator(platform, subs, scorer), context.Background()
}

func TestValidator_RandomRandom(t *testing.T) {
	v, ctx := newValidator(t, &fakePlatform{}, nil)

	result, err := v.Validate(ctx, ValidateCommissionRequest{CommissionType: models.CommissionRandomRandom})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidator_RandomSubreddit(t *testing.T) {
	platform := &fakePlatform{
		subreddits: map[string]*reddit.Subreddit{
			"golf": {Name: "golf", Over18: false},
			"nsfw": {Name: "nsfw", Over18: true},
		},
		hot: map[string][]reddit.Post{
			"golf": {
				{ID: "sticky", Title: "Rules", Stickied: true, Author: "mod"},
				{ID: "best1", Title: "Hole in one at dawn", Author: "golfer"},
			},
		},
	}
	v, ctx := newValidator(t, platform, nil)

	t.Run("valid subreddit with candidate post", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionRandomSubreddit,
			Subreddit:      "r/Golf",
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "golf", result.Subreddit)
		assert.Equal(t, "best1", result.PostID)
		assert.Equal(t, "Hole in one at dawn", result.PostTitle)
	})

	t.Run("unknown subreddit", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionRandomSubreddit,
			Subreddit:      "doesnotexist",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonSubredditNotFound, result.Reason)
	})

	t.Run("over-18 subreddit rejected", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionRandomSubreddit,
			Subreddit:      "nsfw",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonSubredditOver18, result.Reason)
	})

	t.Run("missing subreddit is a validation error", func(t *testing.T) {
		_, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionRandomSubreddit,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("upstream outage surfaces as UpstreamUnavailable", func(t *testing.T) {
		down := &fakePlatform{err: errors.New("connection refused")}
		vDown, ctxDown := newValidator(t, down, nil)
		_, err := vDown.Validate(ctxDown, ValidateCommissionRequest{
			CommissionType: models.CommissionRandomSubreddit,
			Subreddit:      "golf",
		})
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	})
}

func TestValidator_SpecificPost(t *testing.T) {
	platform := &fakePlatform{
		posts: map[string]*reddit.Post{
			"abc123": {ID: "abc123", Title: "Sunrise over the ridge", Subreddit: "hiking", Author: "alpine_fan"},
			"xxx666": {ID: "xxx666", Title: "nope", Subreddit: "gonewild", Over18: true, Author: "someone"},
		},
	}
	scorer := &fakeScorer{rating: &llm.Rating{Score: 8.5, Classification: "artistic", Reason: "strong light"}}
	v, ctx := newValidator(t, platform, scorer)

	t.Run("URL resolves to subreddit and post id", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "https://reddit.com/r/hiking/comments/abc123/sunrise_over_the_ridge",
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "hiking", result.Subreddit)
		assert.Equal(t, "abc123", result.PostID)
		assert.Equal(t, "Sunrise over the ridge", result.PostTitle)
		require.NotNil(t, result.Ratings)
		assert.Equal(t, 8.5, result.Ratings["score"])
	})

	t.Run("bare id works", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "abc123",
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "abc123", result.PostID)
	})

	t.Run("missing post", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "zzz999",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonPostNotFound, result.Reason)
	})

	t.Run("over-18 post rejected", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "xxx666",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonPostNotEligible, result.Reason)
	})

	t.Run("garbage reference", func(t *testing.T) {
		result, err := v.Validate(ctx, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "https://example.com/nothing",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, ReasonBadReference, result.Reason)
	})

	t.Run("scorer failure is non-fatal", func(t *testing.T) {
		vNoScore, ctxNS := newValidator(t, platform, &fakeScorer{err: llm.ErrUpstream})
		result, err := vNoScore.Validate(ctxNS, ValidateCommissionRequest{
			CommissionType: models.CommissionSpecificPost,
			PostIDOrURL:    "abc123",
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Nil(t, result.Ratings)
	})
}
