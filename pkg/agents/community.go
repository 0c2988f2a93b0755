package agents

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
)

// newPostScanLimit is how many posts one cycle examines per home subreddit.
const newPostScanLimit = 25

// communityInstruction is the scorer prompt for home-community engagement.
const communityInstruction = `You are a friendly community moderator for an AI artwork service. Given a new post, respond with JSON {"score": 0-10, "classification": "welcome"|"engage"|"ignore", "text": a short warm reply, "reason": short sentence}. Score how much the post deserves an encouraging reply. Never produce text for posts that should be ignored.`

// communityPlatform is the slice of the Reddit client the community agent uses.
type communityPlatform interface {
	New(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
	Comment(ctx context.Context, parentFullname, text string) error
	Vote(ctx context.Context, fullname string, dir int) error
}

// engagementScorer rates a post and drafts the reply text.
type engagementScorer interface {
	Rate(ctx context.Context, instruction, postTitle, postBody string) (*llm.Rating, error)
}

// CommunityAgent tends the service's home subreddits: it upvotes and replies
// to worthwhile new posts. It never mutates commission state.
type CommunityAgent struct {
	platform   communityPlatform
	scorer     engagementScorer
	actions    *services.AgentActionService
	cfg        config.AgentConfig
	subreddits []string
	writeGate  *rate.Limiter
}

// NewCommunityAgent creates the community agent for the given home subreddits.
func NewCommunityAgent(platform communityPlatform, scorer engagementScorer, actions *services.AgentActionService, cfg config.AgentConfig, subreddits []string) *CommunityAgent {
	return &CommunityAgent{
		platform:   platform,
		scorer:     scorer,
		actions:    actions,
		cfg:        cfg,
		subreddits: subreddits,
		writeGate:  rate.NewLimiter(rate.Every(cfg.WriteRefill), cfg.WriteBudget),
	}
}

// ID implements Agent.
func (a *CommunityAgent) ID() string { return "community" }

// RunCycle scans each home subreddit's new feed once.
func (a *CommunityAgent) RunCycle(ctx context.Context) error {
	for _, sub := range a.subreddits {
		if err := a.scanSubreddit(ctx, services.NormalizeName(sub)); err != nil {
			return fmt.Errorf("scanning r/%s: %w", sub, err)
		}
	}
	return nil
}

func (a *CommunityAgent) scanSubreddit(ctx context.Context, subreddit string) error {
	posts, err := a.platform.New(ctx, subreddit, newPostScanLimit)
	if err != nil {
		return err
	}

	log := slog.With("agent_id", a.ID(), "subreddit", subreddit)
	for i := range posts {
		post := &posts[i]
		if post.Deleted() || post.Stickied {
			continue
		}

		seen, err := a.actions.HasRecentAction(ctx, a.ID(), post.ID, a.cfg.DedupWindow)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		if err := a.engage(ctx, post, log); err != nil {
			return err
		}
	}
	return nil
}

// engage rates one post and replies when it clears the threshold. Every
// examined post gets an AgentAction row so the next cycle skips it.
func (a *CommunityAgent) engage(ctx context.Context, post *reddit.Post, log *slog.Logger) error {
	rating, err := a.scorer.Rate(ctx, communityInstruction, post.Title, post.SelfText)
	if err != nil {
		return fmt.Errorf("rating post %s: %w", post.ID, err)
	}

	payload := ratingPayload(rating)
	if rating == nil || rating.Score < a.cfg.ScoreThreshold || rating.Text == "" {
		_, err := a.actions.Record(ctx, services.RecordActionRequest{
			AgentID: a.ID(), TargetID: post.ID, Kind: "skip",
			DryRun: a.cfg.DryRun, Rating: payload,
		})
		return err
	}

	if !a.cfg.DryRun {
		if !a.writeGate.Allow() {
			log.Info("Write budget exhausted, deferring post", "post_id", post.ID)
			return nil // no action row: next cycle retries
		}
		if err := a.platform.Vote(ctx, reddit.PostFullname(post.ID), 1); err != nil {
			return fmt.Errorf("upvoting %s: %w", post.ID, err)
		}
		if err := a.platform.Comment(ctx, reddit.PostFullname(post.ID), rating.Text); err != nil {
			return fmt.Errorf("replying to %s: %w", post.ID, err)
		}
	}

	_, err = a.actions.Record(ctx, services.RecordActionRequest{
		AgentID: a.ID(), TargetID: post.ID, Kind: "welcome",
		DryRun: a.cfg.DryRun, Rating: payload,
	})
	if err != nil {
		return err
	}
	log.Info("Engaged post", "post_id", post.ID, "score", rating.Score, "dry_run", a.cfg.DryRun)
	return nil
}

// ratingPayload converts a rating into the opaque JSON stored on the action.
func ratingPayload(r *llm.Rating) map[string]interface{} {
	if r == nil {
		return nil
	}
	return map[string]interface{}{
		"score":          r.Score,
		"classification": r.Classification,
		"reason":         r.Reason,
	}
}
