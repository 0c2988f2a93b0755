package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/agentaction"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/subredditgoal"
	"github.com/redditart/commissioner/pkg/models"
	testdb "github.com/redditart/commissioner/test/database"
)

const testGoalCents = int64(10000)

func newLedger(t *testing.T) (*LedgerService, *DonationService, context.Context) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewLedgerService(client.Client, testGoalCents),
		NewDonationService(client.Client),
		context.Background()
}

func succeededDonation(t *testing.T, donations *DonationService, ctx context.Context, intentID, subreddit string, amount int64) string {
	t.Helper()
	req := models.UpsertDonationRequest{
		PaymentIntentID: intentID,
		Amount:          amount,
		Status:          "succeeded",
		Type:            models.DonationTypeSupport,
		Subreddit:       subreddit,
		Source:          models.DonationSourceStripe,
	}
	d, err := donations.UpsertByIntent(ctx, req)
	require.NoError(t, err)
	return d.ID
}

func TestLedgerService_ApplyDonation(t *testing.T) {
	ledger, donations, ctx := newLedger(t)

	id := succeededDonation(t, donations, ctx, "pi_apply", "golf", 2500)

	result, err := ledger.ApplyDonation(ctx, id)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, "golf", result.Subreddit)
	assert.False(t, result.GoalCompleted)

	progress, err := ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), progress.CurrentAmount)
	assert.Equal(t, testGoalCents, progress.GoalAmount)
	assert.Equal(t, "active", progress.Status)
}

func TestLedgerService_ApplyDonationExactlyOnce(t *testing.T) {
	ledger, donations, ctx := newLedger(t)

	id := succeededDonation(t, donations, ctx, "pi_once", "golf", 2500)

	// Webhook replays call ApplyDonation repeatedly, possibly concurrently.
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.ApplyDonation(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	progress, err := ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), progress.CurrentAmount)
}

func TestLedgerService_GoalCompletion(t *testing.T) {
	ledger, donations, ctx := newLedger(t)
	client := ledger.client

	// First donation leaves the goal active.
	first := succeededDonation(t, donations, ctx, "pi_g1", "hiking", 6000)
	result, err := ledger.ApplyDonation(ctx, first)
	require.NoError(t, err)
	assert.False(t, result.GoalCompleted)

	// Second crosses the threshold: goal completes, a tier_completed action
	// is recorded, and a banner task is enqueued at elevated priority.
	second := succeededDonation(t, donations, ctx, "pi_g2", "hiking", 5000)
	result, err = ledger.ApplyDonation(ctx, second)
	require.NoError(t, err)
	assert.True(t, result.GoalCompleted)
	assert.NotEmpty(t, result.BannerTaskID)

	goal, err := client.SubredditGoal.Query().
		Where(subredditgoal.SubredditEQ("hiking")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subredditgoal.StatusCompleted, goal.Status)
	assert.Equal(t, int64(11000), goal.CurrentAmount)
	assert.NotNil(t, goal.CompletedAt)

	actions, err := client.AgentAction.Query().
		Where(agentaction.KindEQ("tier_completed")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "hiking", actions[0].TargetID)

	banner, err := client.PipelineTask.Get(ctx, result.BannerTaskID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.TypeSubredditPost, banner.Type)
	assert.Equal(t, models.PriorityBanner, banner.Priority)
	require.NotNil(t, banner.Subreddit)
	assert.Equal(t, "hiking", *banner.Subreddit)

	// A third donation keeps counting but completes nothing twice.
	third := succeededDonation(t, donations, ctx, "pi_g3", "hiking", 1000)
	result, err = ledger.ApplyDonation(ctx, third)
	require.NoError(t, err)
	assert.False(t, result.GoalCompleted)
}

func TestLedgerService_ManualDonationNotCredited(t *testing.T) {
	ledger, donations, ctx := newLedger(t)

	d, err := donations.UpsertByIntent(ctx, models.UpsertDonationRequest{
		PaymentIntentID: "pi_manual",
		Amount:          9999,
		Status:          "succeeded",
		Type:            models.DonationTypeSupport,
		Subreddit:       "golf",
		Source:          models.DonationSourceManual,
	})
	require.NoError(t, err)

	result, err := ledger.ApplyDonation(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Empty(t, result.Subreddit)

	progress, err := ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Zero(t, progress.CurrentAmount)
}

func TestLedgerService_ApplyRejectsNonSucceeded(t *testing.T) {
	ledger, donations, ctx := newLedger(t)

	d, err := donations.UpsertByIntent(ctx, models.UpsertDonationRequest{
		PaymentIntentID: "pi_pending",
		Amount:          500,
		Status:          "pending",
		Type:            models.DonationTypeSupport,
		Subreddit:       "golf",
	})
	require.NoError(t, err)

	_, err = ledger.ApplyDonation(ctx, d.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLedgerService_GetOverallAndBySubreddit(t *testing.T) {
	ledger, donations, ctx := newLedger(t)

	commission, err := donations.UpsertByIntent(ctx, models.UpsertDonationRequest{
		PaymentIntentID: "pi_c1",
		Amount:          2500,
		Status:          "succeeded",
		Type:            models.DonationTypeCommission,
		CommissionType:  models.CommissionRandomSubreddit,
		Subreddit:       "golf",
	})
	require.NoError(t, err)
	support := succeededDonation(t, donations, ctx, "pi_s1", "golf", 1000)
	other := succeededDonation(t, donations, ctx, "pi_s2", "hiking", 500)

	for _, id := range []string{commission.ID, support, other} {
		_, err := ledger.ApplyDonation(ctx, id)
		require.NoError(t, err)
	}

	overall, err := ledger.GetOverall(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), overall.TotalRaised)
	assert.Equal(t, 2, overall.GoalsActive)
	assert.Zero(t, overall.GoalsCompleted)
	assert.Equal(t, 3, overall.DonationCount)

	bySub, err := ledger.GetBySubreddit(ctx)
	require.NoError(t, err)
	require.Contains(t, bySub, "golf")
	require.Contains(t, bySub, "hiking")
	require.NotNil(t, bySub["golf"].Commission)
	assert.Equal(t, int64(2500), bySub["golf"].Commission.Amount)
	assert.Len(t, bySub["golf"].Support, 1)
	assert.Nil(t, bySub["hiking"].Commission)
	assert.Len(t, bySub["hiking"].Support, 1)
}
