package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/donation"
	"github.com/redditart/commissioner/pkg/models"
	testdb "github.com/redditart/commissioner/test/database"
)

func commissionRequest(intentID string) models.UpsertDonationRequest {
	return models.UpsertDonationRequest{
		PaymentIntentID: intentID,
		Amount:          2500,
		Currency:        "usd",
		Status:          "succeeded",
		Type:            models.DonationTypeCommission,
		CommissionType:  models.CommissionRandomSubreddit,
		Subreddit:       "golf",
		RedditHandle:    "testhiker",
		Tier:            "sapphire",
		Source:          models.DonationSourceStripe,
	}
}

func TestDonationService_UpsertByIntent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDonationService(client.Client)
	ctx := context.Background()

	t.Run("creates donation on first webhook", func(t *testing.T) {
		d, err := service.UpsertByIntent(ctx, commissionRequest("pi_create"))
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, donation.StatusSucceeded, d.Status)
		assert.Equal(t, int64(2500), d.Amount)
		require.NotNil(t, d.Subreddit)
		assert.Equal(t, "golf", *d.Subreddit)
		assert.False(t, d.Applied)
	})

	t.Run("duplicate webhook is idempotent", func(t *testing.T) {
		first, err := service.UpsertByIntent(ctx, commissionRequest("pi_dup"))
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			again, err := service.UpsertByIntent(ctx, commissionRequest("pi_dup"))
			require.NoError(t, err)
			assert.Equal(t, first.ID, again.ID)
			assert.Equal(t, donation.StatusSucceeded, again.Status)
		}

		count, err := client.Donation.Query().
			Where(donation.PaymentIntentID("pi_dup")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("status never moves backward", func(t *testing.T) {
		req := commissionRequest("pi_backward")
		_, err := service.UpsertByIntent(ctx, req)
		require.NoError(t, err)

		// A late pending webhook must not regress the status.
		req.Status = "pending"
		d, err := service.UpsertByIntent(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, donation.StatusSucceeded, d.Status)
	})

	t.Run("pending then succeeded moves forward", func(t *testing.T) {
		req := commissionRequest("pi_forward")
		req.Status = "pending"
		d, err := service.UpsertByIntent(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, donation.StatusPending, d.Status)

		req.Status = "succeeded"
		d, err = service.UpsertByIntent(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, donation.StatusSucceeded, d.Status)

		req.Status = "refunded"
		d, err = service.UpsertByIntent(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, donation.StatusRefunded, d.Status)
	})

	t.Run("rejects missing intent id", func(t *testing.T) {
		req := commissionRequest("")
		_, err := service.UpsertByIntent(ctx, req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := commissionRequest("pi_bad_status")
		req.Status = "exploded"
		_, err := service.UpsertByIntent(ctx, req)
		assert.True(t, IsValidationError(err))
	})
}

func TestDonationService_GetByIntentID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDonationService(client.Client)
	ctx := context.Background()

	created, err := service.UpsertByIntent(ctx, commissionRequest("pi_get"))
	require.NoError(t, err)

	got, err := service.GetByIntentID(ctx, "pi_get")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = service.GetByIntentID(ctx, "pi_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDonationSummary_HidesAnonymousHandle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDonationService(client.Client)
	ctx := context.Background()

	req := commissionRequest("pi_anon")
	req.IsAnonymous = true
	d, err := service.UpsertByIntent(ctx, req)
	require.NoError(t, err)

	s := Summary(d)
	assert.True(t, s.IsAnonymous)
	assert.Empty(t, s.RedditHandle)
	assert.Equal(t, "sapphire", s.Tier)
}
