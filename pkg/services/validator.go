package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/reddit"
)

// Validation failure reason codes returned to the form.
const (
	ReasonSubredditNotFound = "subreddit_not_found"
	ReasonSubredditOver18   = "subreddit_over_18"
	ReasonPostNotFound      = "post_not_found"
	ReasonPostNotEligible   = "post_not_eligible"
	ReasonBadReference      = "unrecognized_post_reference"
)

// artisticPotentialPrompt asks the scorer for the opaque ratings object the
// commission form shows next to a specific post.
const artisticPotentialPrompt = `You judge Reddit posts for their potential as commissioned artwork. Respond with JSON {"score": 0-10, "classification": one of "artistic"|"plain"|"unsuitable", "reason": short sentence}. Score composition, imagery, and emotional resonance.`

// socialPlatform is the slice of the Reddit client the validator uses.
type socialPlatform interface {
	AboutSubreddit(ctx context.Context, name string) (*reddit.Subreddit, error)
	GetPost(ctx context.Context, postID string) (*reddit.Post, error)
	Hot(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
}

// postScorer rates a post's artistic potential. Optional; when nil the
// validator skips ratings.
type postScorer interface {
	Rate(ctx context.Context, instruction, postTitle, postBody string) (*llm.Rating, error)
}

// CommissionValidator checks a commission request against Reddit before the
// user pays. Policy rejections come back as valid=false with a reason code;
// only upstream outages are errors. Nothing is persisted on failure.
type CommissionValidator struct {
	platform   socialPlatform
	subreddits *SubredditService
	scorer     postScorer
}

// NewCommissionValidator creates a new CommissionValidator
func NewCommissionValidator(platform socialPlatform, subreddits *SubredditService, scorer postScorer) *CommissionValidator {
	return &CommissionValidator{platform: platform, subreddits: subreddits, scorer: scorer}
}

// ValidateCommissionRequest is the form's validation input.
type ValidateCommissionRequest struct {
	CommissionType string
	Subreddit      string
	PostIDOrURL    string
}

// Validate checks the request. Returns ErrUpstreamUnavailable when Reddit
// cannot be reached (mapped to 502 at the edge).
func (v *CommissionValidator) Validate(ctx context.Context, req ValidateCommissionRequest) (*models.ValidationResult, error) {
	switch req.CommissionType {
	case models.CommissionRandomRandom:
		return &models.ValidationResult{Valid: true}, nil
	case models.CommissionRandomSubreddit:
		return v.validateSubreddit(ctx, req.Subreddit)
	case models.CommissionSpecificPost:
		return v.validatePost(ctx, req.PostIDOrURL)
	default:
		return nil, NewValidationError("commission_type", fmt.Sprintf("unknown commission type %q", req.CommissionType))
	}
}

func (v *CommissionValidator) validateSubreddit(ctx context.Context, name string) (*models.ValidationResult, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, NewValidationError("subreddit", "is required")
	}

	info, err := v.platform.AboutSubreddit(ctx, name)
	if err != nil {
		if errors.Is(err, reddit.ErrNotFound) || errors.Is(err, reddit.ErrForbidden) {
			return &models.ValidationResult{Valid: false, Subreddit: name, Reason: ReasonSubredditNotFound}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if info.Over18 {
		return &models.ValidationResult{Valid: false, Subreddit: name, Reason: ReasonSubredditOver18}, nil
	}

	if _, err := v.subreddits.Ensure(ctx, info); err != nil {
		return nil, err
	}

	result := &models.ValidationResult{Valid: true, Subreddit: name}

	// Best-effort: attach a candidate post so the form can preview what the
	// pipeline is likely to pick.
	if posts, err := v.platform.Hot(ctx, name, 25); err == nil {
		for i := range posts {
			p := &posts[i]
			if p.Over18 || p.Stickied || p.Deleted() {
				continue
			}
			result.PostID = p.ID
			result.PostTitle = p.Title
			break
		}
	} else {
		slog.Debug("Candidate post sampling failed", "subreddit", name, "error", err)
	}
	return result, nil
}

func (v *CommissionValidator) validatePost(ctx context.Context, rawRef string) (*models.ValidationResult, error) {
	ref, err := reddit.ParsePostURL(rawRef)
	if err != nil {
		return &models.ValidationResult{Valid: false, Reason: ReasonBadReference}, nil
	}

	post, err := v.platform.GetPost(ctx, ref.PostID)
	if err != nil {
		if errors.Is(err, reddit.ErrNotFound) || errors.Is(err, reddit.ErrForbidden) {
			return &models.ValidationResult{Valid: false, PostID: ref.PostID, Reason: ReasonPostNotFound}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	sub := NormalizeName(post.Subreddit)
	if post.Over18 {
		return &models.ValidationResult{
			Valid: false, Subreddit: sub, PostID: post.ID, Reason: ReasonPostNotEligible,
		}, nil
	}

	result := &models.ValidationResult{
		Valid:     true,
		Subreddit: sub,
		PostID:    post.ID,
		PostTitle: post.Title,
	}

	if v.scorer != nil {
		rating, err := v.scorer.Rate(ctx, artisticPotentialPrompt, post.Title, post.SelfText)
		if err != nil {
			slog.Debug("Artistic potential scoring failed", "post_id", post.ID, "error", err)
		} else {
			result.Ratings = map[string]any{
				"score":          rating.Score,
				"classification": rating.Classification,
				"reason":         rating.Reason,
			}
		}
	}
	return result, nil
}
