package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/payment"
)

func signedHeaders() map[string]string {
	return map[string]string{"Stripe-Signature": payment.FakeSignature}
}

func TestWebhook_AdmitsCommission(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	event := succeededWebhook("pi_test_1", 2500, commissionMetadata())
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[WebhookResponse](t, rec)
	require.True(t, resp.Received)
	require.NotEmpty(t, resp.TaskID)

	d, err := f.donations.GetByIntentID(ctx, "pi_test_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", string(d.Status))
	assert.Equal(t, int64(2500), d.Amount)
	assert.True(t, d.Applied)

	task, err := f.tasks.GetByDonationID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, task.Status)
	assert.Equal(t, models.PriorityCommission, task.Priority)
	assert.Equal(t, pipelinetask.TypeSubredditPost, task.Type)
	require.NotNil(t, task.Subreddit)
	assert.Equal(t, "golf", *task.Subreddit)

	progress, err := f.ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), progress.CurrentAmount)
}

func TestWebhook_ReplayIsIdempotent(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	event := succeededWebhook("pi_replay", 2500, commissionMetadata())
	var taskID string
	for i := 0; i < 3; i++ {
		rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[WebhookResponse](t, rec)
		if taskID == "" {
			taskID = resp.TaskID
		}
		// Replays return the original task, never a second one.
		assert.Equal(t, taskID, resp.TaskID)
	}

	tasks, total, err := f.tasks.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, tasks, 1)

	// Goal credited exactly once across three deliveries.
	progress, err := f.ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), progress.CurrentAmount)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	f := newServerFixture(t)

	event := succeededWebhook("pi_bad_sig", 2500, commissionMetadata())
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event,
		map[string]string{"Stripe-Signature": "wrong"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := f.donations.GetByIntentID(context.Background(), "pi_bad_sig")
	assert.Error(t, err)
}

func TestWebhook_MalformedBody(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/donations/webhook",
		map[string]string{"unexpected": "shape"}, signedHeaders())

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhook_FailedPayment(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	event := payment.WebhookEvent{
		Kind:     payment.WebhookPaymentFailed,
		IntentID: "pi_failed",
		Amount:   2500,
		Currency: "usd",
		Metadata: commissionMetadata(),
	}
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	d, err := f.donations.GetByIntentID(ctx, "pi_failed")
	require.NoError(t, err)
	assert.Equal(t, "failed", string(d.Status))

	// No task, no ledger credit.
	_, total, err := f.tasks.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	progress, err := f.ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Zero(t, progress.CurrentAmount)
}

func TestWebhook_SupportDonationHasNoTask(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	md := map[string]string{
		"donation_type": "support",
		"subreddit":     "golf",
		"is_anonymous":  "true",
	}
	event := succeededWebhook("pi_support", 500, md)
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[WebhookResponse](t, rec)
	assert.Empty(t, resp.TaskID)

	_, total, err := f.tasks.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Support donations still credit the community goal.
	progress, err := f.ledger.GetProgress(ctx, "golf")
	require.NoError(t, err)
	assert.Equal(t, int64(500), progress.CurrentAmount)
}

func TestWebhook_SpecificPostTask(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	md := map[string]string{
		"donation_type":   "commission",
		"commission_type": "specific_post",
		"post_id":         "abc123",
		"subreddit":       "hiking",
		"is_anonymous":    "false",
	}
	event := succeededWebhook("pi_specific", 2500, md)
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	d, err := f.donations.GetByIntentID(ctx, "pi_specific")
	require.NoError(t, err)
	task, err := f.tasks.GetByDonationID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.TypeSpecificPost, task.Type)
	require.NotNil(t, task.PostID)
	assert.Equal(t, "abc123", *task.PostID)
}

func TestWebhook_TierResolvedFromAmount(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	// The event claims the hd band but only paid enough for bronze.
	md := commissionMetadata()
	md["tier"] = "sapphire"
	event := succeededWebhook("pi_tier_claim", 600, md)
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

	d, err := f.donations.GetByIntentID(ctx, "pi_tier_claim")
	require.NoError(t, err)
	require.NotNil(t, d.Tier)
	assert.Equal(t, "bronze", *d.Tier)

	t.Run("amount below every band has no tier", func(t *testing.T) {
		md := commissionMetadata()
		md["tier"] = "sapphire"
		event := succeededWebhook("pi_tier_low", 100, md)
		require.Equal(t, http.StatusOK,
			f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

		d, err := f.donations.GetByIntentID(ctx, "pi_tier_low")
		require.NoError(t, err)
		assert.Nil(t, d.Tier)
	})
}

func TestWebhook_ClipsOverLongMetadata(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	md := commissionMetadata()
	md["message"] = strings.Repeat("é", 150)
	md["reddit_username"] = strings.Repeat("grower", 5)
	event := succeededWebhook("pi_long_md", 2500, md)

	// Admission must survive over-long fields; a storage error here would
	// make the gateway redeliver forever with no way to succeed.
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[WebhookResponse](t, rec)
	require.True(t, resp.Received)
	require.NotEmpty(t, resp.TaskID)

	d, err := f.donations.GetByIntentID(ctx, "pi_long_md")
	require.NoError(t, err)
	require.NotNil(t, d.Message)
	assert.LessOrEqual(t, len(*d.Message), 100)
	assert.True(t, utf8.ValidString(*d.Message))
	require.NotNil(t, d.RedditHandle)
	assert.Len(t, *d.RedditHandle, 20)
}

func TestWebhook_IgnoredEventKind(t *testing.T) {
	f := newServerFixture(t)

	event := payment.WebhookEvent{Kind: payment.WebhookIgnored, IntentID: "pi_ignored"}
	rec := f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	_, err := f.donations.GetByIntentID(context.Background(), "pi_ignored")
	assert.Error(t, err)
}
