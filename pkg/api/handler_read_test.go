package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/services"
)

func TestGetDonation(t *testing.T) {
	f := newServerFixture(t)

	event := succeededWebhook("pi_read", 2500, commissionMetadata())
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

	rec := f.do(t, http.MethodGet, "/api/donations/pi_read", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeJSON[models.DonationSummary](t, rec)
	assert.Equal(t, int64(2500), summary.Amount)
	assert.Equal(t, "succeeded", summary.Status)
	assert.Equal(t, "testhiker", summary.RedditHandle)

	t.Run("unknown intent is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/donations/pi_missing", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetDonation_AnonymousHidesHandle(t *testing.T) {
	f := newServerFixture(t)

	md := commissionMetadata()
	md["is_anonymous"] = "true"
	event := succeededWebhook("pi_anon", 2500, md)
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

	rec := f.do(t, http.MethodGet, "/api/donations/pi_anon", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeJSON[models.DonationSummary](t, rec)
	assert.True(t, summary.IsAnonymous)
	assert.Empty(t, summary.RedditHandle)
}

func TestFundraisingProgress(t *testing.T) {
	f := newServerFixture(t)

	event := succeededWebhook("pi_goal", 2500, commissionMetadata())
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

	rec := f.do(t, http.MethodGet, "/api/fundraising/progress", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[FundraisingResponse](t, rec)
	assert.Equal(t, int64(2500), resp.Overall.TotalRaised)
	assert.Equal(t, 1, resp.Overall.DonationCount)
	require.Len(t, resp.Subreddits, 1)
	assert.Equal(t, "golf", resp.Subreddits[0].Subreddit)

	t.Run("single subreddit filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/fundraising/progress?subreddit=golf", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		progress := decodeJSON[models.GoalProgress](t, rec)
		assert.Equal(t, int64(2500), progress.CurrentAmount)
		assert.Equal(t, int64(10000), progress.GoalAmount)
	})

	t.Run("untracked subreddit reports default goal", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/fundraising/progress?subreddit=chess", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		progress := decodeJSON[models.GoalProgress](t, rec)
		assert.Zero(t, progress.CurrentAmount)
		assert.Equal(t, int64(10000), progress.GoalAmount)
	})
}

func TestListDonations(t *testing.T) {
	f := newServerFixture(t)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/donations/webhook",
		succeededWebhook("pi_list_1", 2500, commissionMetadata()), signedHeaders()).Code)
	support := map[string]string{"donation_type": "support", "subreddit": "golf", "is_anonymous": "false"}
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/donations/webhook",
		succeededWebhook("pi_list_2", 500, support), signedHeaders()).Code)

	rec := f.do(t, http.MethodGet, "/api/donations", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeJSON[DonationListResponse](t, rec)
	require.Equal(t, 2, list.Total)
	require.Len(t, list.Donations, 2)

	t.Run("pagination", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/donations?limit=1&offset=1", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decodeJSON[DonationListResponse](t, rec)
		assert.Equal(t, 2, page.Total)
		assert.Len(t, page.Donations, 1)
	})
}

func TestDonationsBySubreddit(t *testing.T) {
	f := newServerFixture(t)

	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/donations/webhook",
		succeededWebhook("pi_bs_1", 2500, commissionMetadata()), signedHeaders()).Code)
	support := map[string]string{"donation_type": "support", "subreddit": "golf", "is_anonymous": "true"}
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/donations/webhook",
		succeededWebhook("pi_bs_2", 500, support), signedHeaders()).Code)

	rec := f.do(t, http.MethodGet, "/api/donations/by-subreddit", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	groups := decodeJSON[map[string]models.SubredditDonations](t, rec)
	require.Contains(t, groups, "golf")
	require.NotNil(t, groups["golf"].Commission)
	assert.Equal(t, int64(2500), groups["golf"].Commission.Amount)
	require.Len(t, groups["golf"].Support, 1)
	assert.Equal(t, int64(500), groups["golf"].Support[0].Amount)
}

func TestListAndCancelTasks(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	task, err := f.tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
		Priority:  models.PriorityCommission,
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/tasks", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeJSON[TaskListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, task.ID, list.Tasks[0].ID)
	assert.Equal(t, "pending", list.Tasks[0].Status)

	t.Run("invalid status filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/tasks?status=bogus", nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel pending task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/tasks/"+task.ID+"/cancel", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := f.tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinetask.StatusCancelled, got.Status)
	})

	t.Run("cancel unknown task is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/tasks/nope/cancel", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductEndpoints(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	event := succeededWebhook("pi_prod", 2500, commissionMetadata())
	require.Equal(t, http.StatusOK,
		f.do(t, http.MethodPost, "/api/donations/webhook", event, signedHeaders()).Code)

	d, err := f.donations.GetByIntentID(ctx, "pi_prod")
	require.NoError(t, err)
	task, err := f.tasks.GetByDonationID(ctx, d.ID)
	require.NoError(t, err)

	product, err := f.products.Create(ctx, services.CreateProductRequest{
		TaskID:     task.ID,
		DonationID: d.ID,
		Theme:      "dusk fairway",
		ImageTitle: "The Back Nine",
		ImageURL:   "https://i.example/golf.png",
		ProductURL: "https://shop.example/p/1",
		TemplateID: "poster-classic",
	})
	require.NoError(t, err)

	t.Run("product for commission", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products/commission/"+d.ID, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		summary := decodeJSON[models.ProductSummary](t, rec)
		assert.Equal(t, product.ID, summary.ID)
		assert.Equal(t, "The Back Nine", summary.ImageTitle)
	})

	t.Run("unknown commission is 404", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products/commission/nope", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("linked donations", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/products/"+task.ID+"/donations", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		linked := decodeJSON[[]models.DonationSummary](t, rec)
		require.Len(t, linked, 1)
		assert.Equal(t, int64(2500), linked[0].Amount)
	})

	t.Run("generated products list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/generated_products", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decodeJSON[ProductListResponse](t, rec)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "https://i.example/golf.png", list.Products[0].ImageURL)
	})
}

func TestSubredditEndpoints(t *testing.T) {
	f := newServerFixture(t)

	t.Run("validate registers subreddit", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/subreddits/validate",
			ValidateSubredditBody{Subreddit: "r/Golf"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeJSON[map[string]any](t, rec)
		require.Equal(t, true, result["valid"])

		list := f.do(t, http.MethodGet, "/api/subreddits", nil, nil)
		require.Equal(t, http.StatusOK, list.Code)
		subs := decodeJSON[[]SubredditSummary](t, list)
		require.Len(t, subs, 1)
		assert.Equal(t, "golf", subs[0].Name)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/subreddits/validate",
			ValidateSubredditBody{}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
