package agents

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
)

// promoterScanLimit is how many hot posts one cycle examines.
const promoterScanLimit = 25

// promoterInstruction is the scorer prompt for artistic-potential scouting.
const promoterInstruction = `You judge Reddit posts for their potential as commissioned artwork. Respond with JSON {"score": 0-10, "classification": "artistic"|"plain"|"unsuitable", "text": a short friendly comment telling the poster their post would make great artwork, "reason": short sentence}. Score composition, imagery, and emotional resonance.`

// promoterPlatform is the slice of the Reddit client the promoter uses.
type promoterPlatform interface {
	Hot(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
	Comment(ctx context.Context, parentFullname, text string) error
}

// PromoterAgent scans a public feed for posts with artistic potential and
// leaves a promotional comment linking back to the service.
type PromoterAgent struct {
	platform  promoterPlatform
	scorer    engagementScorer
	actions   *services.AgentActionService
	cfg       config.AgentConfig
	subreddit string // empty ⇒ r/popular
	baseURL   string
	writeGate *rate.Limiter
}

// NewPromoterAgent creates the promoter. subreddit may be empty to scan the
// front page.
func NewPromoterAgent(platform promoterPlatform, scorer engagementScorer, actions *services.AgentActionService, cfg config.AgentConfig, subreddit, baseURL string) *PromoterAgent {
	return &PromoterAgent{
		platform:  platform,
		scorer:    scorer,
		actions:   actions,
		cfg:       cfg,
		subreddit: services.NormalizeName(subreddit),
		baseURL:   baseURL,
		writeGate: rate.NewLimiter(rate.Every(cfg.WriteRefill), cfg.WriteBudget),
	}
}

// ID implements Agent.
func (a *PromoterAgent) ID() string { return "promoter" }

// RunCycle scans the feed once.
func (a *PromoterAgent) RunCycle(ctx context.Context) error {
	posts, err := a.platform.Hot(ctx, a.subreddit, promoterScanLimit)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}

	log := slog.With("agent_id", a.ID())
	for i := range posts {
		post := &posts[i]
		if post.Deleted() || post.Stickied || post.Over18 {
			continue
		}

		seen, err := a.actions.HasRecentAction(ctx, a.ID(), post.ID, a.cfg.DedupWindow)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		if err := a.promote(ctx, post, log); err != nil {
			return err
		}
	}
	return nil
}

// promote rates one post and comments when it clears the threshold.
func (a *PromoterAgent) promote(ctx context.Context, post *reddit.Post, log *slog.Logger) error {
	rating, err := a.scorer.Rate(ctx, promoterInstruction, post.Title, post.SelfText)
	if err != nil {
		return fmt.Errorf("rating post %s: %w", post.ID, err)
	}

	payload := ratingPayload(rating)
	if rating == nil || rating.Score < a.cfg.ScoreThreshold {
		_, err := a.actions.Record(ctx, services.RecordActionRequest{
			AgentID: a.ID(), TargetID: post.ID, Kind: "skip",
			DryRun: a.cfg.DryRun, Rating: payload,
		})
		return err
	}

	if !a.cfg.DryRun {
		if !a.writeGate.Allow() {
			log.Info("Write budget exhausted, deferring post", "post_id", post.ID)
			return nil
		}
		if err := a.platform.Comment(ctx, reddit.PostFullname(post.ID), a.promoText(rating.Text)); err != nil {
			return fmt.Errorf("commenting on %s: %w", post.ID, err)
		}
	}

	_, err = a.actions.Record(ctx, services.RecordActionRequest{
		AgentID: a.ID(), TargetID: post.ID, Kind: "promote",
		DryRun: a.cfg.DryRun, Rating: payload,
	})
	if err != nil {
		return err
	}
	log.Info("Promoted post", "post_id", post.ID, "score", rating.Score, "dry_run", a.cfg.DryRun)
	return nil
}

// promoText appends the service link to the generated comment.
func (a *PromoterAgent) promoText(generated string) string {
	if generated == "" {
		generated = "This would make a great piece of artwork!"
	}
	return fmt.Sprintf("%s\n\nCommission it as real artwork at %s", generated, a.baseURL)
}
