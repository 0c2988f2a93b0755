package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/subredditgoal"
	"github.com/redditart/commissioner/pkg/models"
)

// LedgerService maintains per-subreddit fundraising goals. Every succeeded
// non-manual donation is credited exactly once: the donation's applied flag
// and the goal increment commit in one transaction, so webhook replays and
// concurrent appliers cannot double-count.
type LedgerService struct {
	client      *ent.Client
	defaultGoal int64
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(client *ent.Client, defaultGoal int64) *LedgerService {
	return &LedgerService{client: client, defaultGoal: defaultGoal}
}

// ApplyResult reports what ApplyDonation did.
type ApplyResult struct {
	Applied       bool
	Subreddit     string
	GoalCompleted bool
	BannerTaskID  string
}

// ApplyDonation credits a succeeded donation to its subreddit goal. When the
// credit first pushes current_amount across goal_amount, the goal flips to
// completed, a tier_completed AgentAction is recorded, and a banner-art task
// is enqueued at elevated priority — all in the same transaction.
//
// Manual donations are marked applied but never credited. Idempotent: a
// donation is credited at most once regardless of how often this runs.
func (s *LedgerService) ApplyDonation(ctx context.Context, donationID string) (*ApplyResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	d, err := tx.Donation.Query().
		Where(donation.IDEQ(donationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load donation: %w", err)
	}

	result := &ApplyResult{}
	if d.Applied {
		// Already credited by an earlier webhook delivery.
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit: %w", err)
		}
		return result, nil
	}
	if d.Status != donation.StatusSucceeded {
		return nil, fmt.Errorf("%w: donation %s is %s, not succeeded", ErrInvalidInput, donationID, d.Status)
	}

	creditable := d.Source != donation.SourceManual && d.Subreddit != nil && *d.Subreddit != ""
	if creditable {
		sub := NormalizeName(*d.Subreddit)
		result.Subreddit = sub

		goal, err := s.lockGoal(ctx, tx, sub)
		if err != nil {
			return nil, err
		}

		newAmount := goal.CurrentAmount + d.Amount
		update := goal.Update().SetCurrentAmount(newAmount)

		if goal.Status == subredditgoal.StatusActive && newAmount >= goal.GoalAmount {
			update.
				SetStatus(subredditgoal.StatusCompleted).
				SetCompletedAt(time.Now())
			result.GoalCompleted = true
		}
		if _, err := update.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to credit goal: %w", err)
		}

		if result.GoalCompleted {
			_, err = tx.AgentAction.Create().
				SetAgentID("ledger").
				SetTargetID(sub).
				SetKind("tier_completed").
				SetRating(map[string]interface{}{
					"goal_amount":    goal.GoalAmount,
					"current_amount": newAmount,
				}).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to record tier completion: %w", err)
			}

			banner, err := tx.PipelineTask.Create().
				SetType(pipelinetask.TypeSubredditPost).
				SetPriority(models.PriorityBanner).
				SetSubreddit(sub).
				SetMetadata(map[string]interface{}{"trigger": "goal_completed"}).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to enqueue banner task: %w", err)
			}
			result.BannerTaskID = banner.ID
		}
	}

	if _, err := d.Update().SetApplied(true).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark donation applied: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ledger update: %w", err)
	}
	result.Applied = true

	if result.GoalCompleted {
		slog.Info("Subreddit goal completed",
			"subreddit", result.Subreddit, "banner_task_id", result.BannerTaskID)
	}
	return result, nil
}

// lockGoal loads the subreddit's goal row under FOR UPDATE, creating it with
// the default goal amount on first reference.
func (s *LedgerService) lockGoal(ctx context.Context, tx *ent.Tx, sub string) (*ent.SubredditGoal, error) {
	goal, err := tx.SubredditGoal.Query().
		Where(subredditgoal.SubredditEQ(sub)).
		ForUpdate().
		Only(ctx)
	if err == nil {
		return goal, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	// First donation for this subreddit. The unique constraint resolves a
	// concurrent-create race; on conflict re-lock the winner's row.
	err = tx.SubredditGoal.Create().
		SetSubreddit(sub).
		SetGoalAmount(s.defaultGoal).
		OnConflictColumns(subredditgoal.FieldSubreddit).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	goal, err = tx.SubredditGoal.Query().
		Where(subredditgoal.SubredditEQ(sub)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload goal: %w", err)
	}
	return goal, nil
}

// GetProgress returns the fundraising state of one subreddit. Subreddits
// with no donations yet report the default goal at zero.
func (s *LedgerService) GetProgress(ctx context.Context, sub string) (*models.GoalProgress, error) {
	sub = NormalizeName(sub)
	goal, err := s.client.SubredditGoal.Query().
		Where(subredditgoal.SubredditEQ(sub)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &models.GoalProgress{
				Subreddit:  sub,
				GoalAmount: s.defaultGoal,
				Status:     string(subredditgoal.StatusActive),
			}, nil
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goalProgress(goal), nil
}

// ListProgress returns the fundraising state of every subreddit with at
// least one credited donation.
func (s *LedgerService) ListProgress(ctx context.Context) ([]*models.GoalProgress, error) {
	goals, err := s.client.SubredditGoal.Query().
		Order(ent.Asc(subredditgoal.FieldSubreddit)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	out := make([]*models.GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalProgress(g))
	}
	return out, nil
}

// GetOverall aggregates fundraising across all subreddits.
func (s *LedgerService) GetOverall(ctx context.Context) (*models.OverallProgress, error) {
	goals, err := s.client.SubredditGoal.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	overall := &models.OverallProgress{}
	for _, g := range goals {
		overall.TotalRaised += g.CurrentAmount
		if g.Status == subredditgoal.StatusCompleted {
			overall.GoalsCompleted++
		} else {
			overall.GoalsActive++
		}
	}

	count, err := s.client.Donation.Query().
		Where(
			donation.StatusEQ(donation.StatusSucceeded),
			donation.SourceNEQ(donation.SourceManual),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}
	overall.DonationCount = count
	return overall, nil
}

// GetBySubreddit groups succeeded donations per community: the commission
// that started it plus support donations.
func (s *LedgerService) GetBySubreddit(ctx context.Context) (map[string]*models.SubredditDonations, error) {
	donations, err := s.client.Donation.Query().
		Where(
			donation.StatusEQ(donation.StatusSucceeded),
			donation.SubredditNotNil(),
		).
		Order(ent.Asc(donation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	out := make(map[string]*models.SubredditDonations)
	for _, d := range donations {
		sub := NormalizeName(*d.Subreddit)
		group, ok := out[sub]
		if !ok {
			group = &models.SubredditDonations{Subreddit: sub, Support: []models.DonationSummary{}}
			out[sub] = group
		}

		summary := Summary(d)
		if d.Type == donation.TypeCommission && group.Commission == nil {
			group.Commission = &summary
		} else {
			group.Support = append(group.Support, summary)
		}
	}
	return out, nil
}

func goalProgress(g *ent.SubredditGoal) *models.GoalProgress {
	p := &models.GoalProgress{
		Subreddit:     g.Subreddit,
		GoalAmount:    g.GoalAmount,
		CurrentAmount: g.CurrentAmount,
		Status:        string(g.Status),
	}
	if g.CompletedAt != nil {
		p.CompletedAt = g.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return p
}
