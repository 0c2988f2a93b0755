package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/ent/productinfo"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
	testdb "github.com/redditart/commissioner/test/database"
)

// Upstream fakes.

type fakeSource struct {
	hot      map[string][]reddit.Post
	posts    map[string]*reddit.Post
	comments []reddit.Comment
	hotCalls int
}

func (f *fakeSource) Hot(_ context.Context, subreddit string, _ int) ([]reddit.Post, error) {
	f.hotCalls++
	return f.hot[subreddit], nil
}

func (f *fakeSource) GetPost(_ context.Context, postID string) (*reddit.Post, error) {
	if p, ok := f.posts[postID]; ok {
		return p, nil
	}
	return nil, reddit.ErrNotFound
}

func (f *fakeSource) TopComments(context.Context, string, string, int) ([]reddit.Comment, error) {
	return f.comments, nil
}

type fakeDesigner struct {
	design *llm.Design
	err    error
	calls  int
}

func (f *fakeDesigner) DesignProduct(context.Context, llm.PostContext) (*llm.Design, error) {
	f.calls++
	return f.design, f.err
}

func (f *fakeDesigner) PromptVersion() string { return "v3" }

type fakeImageGen struct {
	img     []byte
	err     error
	calls   int
	quality llm.Quality
}

func (f *fakeImageGen) Generate(_ context.Context, _ string, quality llm.Quality) ([]byte, error) {
	f.calls++
	f.quality = quality
	return f.img, f.err
}

func (f *fakeImageGen) Model() string { return "dall-e-3" }

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(context.Context, []byte, string, string) (string, error) {
	f.calls++
	return f.url, f.err
}

type fixture struct {
	client    *ent.Client
	engine    *Engine
	tasks     *services.TaskService
	broker    *events.ProgressBroker
	source    *fakeSource
	designer  *fakeDesigner
	imageGen  *fakeImageGen
	uploader  *fakeUploader
	donations *services.DonationService
	products  *services.ProductService
}

func hotFeed() []reddit.Post {
	now := float64(time.Now().Unix())
	return []reddit.Post{
		{ID: "sticky1", Title: "Rules", Subreddit: "golf", Stickied: true, Author: "mod", Score: 500, CreatedUTC: now},
		{ID: "best1", Title: "Hole in one at dawn", Subreddit: "golf", Author: "golfer", Score: 120, NumComments: 40, CreatedUTC: now - 3600},
		{ID: "meh1", Title: "New grips", Subreddit: "golf", Author: "other", Score: 30, NumComments: 2, CreatedUTC: now - 7200},
	}
}

func newFixture(t *testing.T) (*fixture, context.Context) {
	t.Helper()
	db := testdb.NewTestClient(t)

	publisher := events.NewEventPublisher(db.DB())
	broker := events.NewProgressBroker(db.Client, publisher)

	f := &fixture{
		client: db.Client,
		broker: broker,
		source: &fakeSource{
			hot:      map[string][]reddit.Post{"golf": hotFeed()},
			posts:    map[string]*reddit.Post{},
			comments: []reddit.Comment{{Author: "fan", Body: "what a shot"}},
		},
		designer: &fakeDesigner{design: &llm.Design{
			Theme:            "dawn golf",
			ImageTitle:       "Hole in One",
			ImageDescription: "a misty golf course at dawn, oil painting",
		}},
		imageGen:  &fakeImageGen{img: []byte("raw-image-bytes")},
		uploader:  &fakeUploader{url: "https://i.imgur.com/abc123.png"},
		tasks:     services.NewTaskService(db.Client, config.DefaultQueueConfig()),
		donations: services.NewDonationService(db.Client),
		products:  services.NewProductService(db.Client),
	}

	f.engine = NewEngine(Deps{
		Client:     db.Client,
		Platform:   f.source,
		Designer:   f.designer,
		ImageGen:   f.imageGen,
		Uploader:   f.uploader,
		Broker:     broker,
		Subreddits: services.NewSubredditService(db.Client),
		Products:   f.products,
		Tiers:      services.NewTierService(db.Client),
		Donations:  f.donations,
		Upstream:   config.DefaultUpstreamConfig(),
		BaseURL:    "https://example.com",
	})
	return f, context.Background()
}

func (f *fixture) enqueue(t *testing.T, ctx context.Context, req models.EnqueueTaskRequest) *ent.PipelineTask {
	t.Helper()
	task, err := f.tasks.Enqueue(ctx, req)
	require.NoError(t, err)
	return task
}

func stages(history []events.Progress) []string {
	out := make([]string, 0, len(history))
	for _, p := range history {
		out = append(out, p.Stage)
	}
	return out
}

func TestEngine_HappyPath(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
		Priority:  models.PriorityCommission,
	})

	result := f.engine.Execute(ctx, task)
	require.NotNil(t, result)
	require.NoError(t, result.Err)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)

	history, err := f.broker.History(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"post_fetching", "post_fetched", "product_designed",
		"image_generation_started", "image_generated", "image_stamped",
		"commission_complete",
	}, stages(history))
	for i := 1; i < len(history); i++ {
		assert.GreaterOrEqual(t, history[i].Percent, history[i-1].Percent)
	}
	assert.Equal(t, 100, history[len(history)-1].Percent)

	// The highest-ranked eligible post wins: stickied posts are skipped.
	got, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PostID)
	assert.Equal(t, "best1", *got.PostID)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://i.imgur.com/abc123.png", *got.ImageURL)

	product, err := f.products.GetByTaskID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/abc123.png", product.ImageURL)
	assert.Contains(t, product.ProductURL, "https://example.com/product/create?")
	assert.Contains(t, product.ProductURL, "image=")
	assert.Equal(t, "dall-e-3", product.Model)
	assert.Equal(t, "v3", product.PromptVersion)

	// The source post was recorded and marked used.
	post, err := f.client.RedditPost.Get(ctx, "best1")
	require.NoError(t, err)
	assert.NotNil(t, post.LastUsedAt)
	assert.Equal(t, llm.QualityStandard, f.imageGen.quality)
}

func TestEngine_SpecificPostSkipsSelection(t *testing.T) {
	f, ctx := newFixture(t)
	f.source.posts["abc123"] = &reddit.Post{
		ID: "abc123", Title: "Sunrise over the ridge", Subreddit: "hiking", Author: "alpine_fan",
	}
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:     models.TaskTypeSpecificPost,
		PostID:   "abc123",
		Priority: models.PriorityCommission,
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
	assert.Zero(t, f.source.hotCalls)

	got, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Subreddit)
	assert.Equal(t, "hiking", *got.Subreddit)
}

func TestEngine_DeletedSpecificPostFallsBack(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSpecificPost,
		PostID:    "gone999",
		Subreddit: "golf",
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
	assert.Equal(t, 1, f.source.hotCalls)

	got, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PostID)
	assert.Equal(t, "best1", *got.PostID)
	assert.Equal(t, "post_deleted", got.Metadata["fallback"])
	assert.Equal(t, "gone999", got.Metadata["requested_post_id"])
}

func TestEngine_DeletedSpecificPostWithoutSubredditFails(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:   models.TaskTypeSpecificPost,
		PostID: "gone999",
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusFailed, result.Status)
	assert.False(t, result.Retryable)
}

func TestEngine_ContentPolicyRefusalIsPermanent(t *testing.T) {
	f, ctx := newFixture(t)
	f.designer.err = llm.ErrContentPolicy
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusFailed, result.Status)
	assert.False(t, result.Retryable)
	assert.ErrorIs(t, result.Err, llm.ErrContentPolicy)

	_, err := f.products.GetByTaskID(ctx, task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEngine_TransientErrorIsRetryable(t *testing.T) {
	f, ctx := newFixture(t)
	f.imageGen.err = errors.New("upstream 503")
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusFailed, result.Status)
	assert.True(t, result.Retryable)
}

func TestEngine_ResumeSkipsCheckpointedStages(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
	})

	// A previous attempt got as far as the design checkpoint.
	_, err := f.client.PipelineTask.UpdateOneID(task.ID).
		SetPostID("best1").
		SetTheme("dawn golf").
		SetImageTitle("Hole in One").
		SetImageDescription("a misty golf course at dawn, oil painting").
		Save(ctx)
	require.NoError(t, err)
	task, err = f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
	assert.Zero(t, f.designer.calls)
	assert.Zero(t, f.source.hotCalls)
	assert.Equal(t, 1, f.imageGen.calls)

	t.Run("hosted image is not regenerated", func(t *testing.T) {
		task2 := f.enqueue(t, ctx, models.EnqueueTaskRequest{
			Type:      models.TaskTypeSubredditPost,
			Subreddit: "golf",
		})
		_, err := f.client.PipelineTask.UpdateOneID(task2.ID).
			SetPostID("best1").
			SetTheme("dawn golf").
			SetImageTitle("Hole in One").
			SetImageDescription("a misty golf course at dawn, oil painting").
			SetImageURL("https://i.imgur.com/prior.png").
			Save(ctx)
		require.NoError(t, err)
		task2, err = f.tasks.GetByID(ctx, task2.ID)
		require.NoError(t, err)

		genCalls := f.imageGen.calls
		result := f.engine.Execute(ctx, task2)
		assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
		assert.Equal(t, genCalls, f.imageGen.calls)

		product, err := f.products.GetByTaskID(ctx, task2.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://i.imgur.com/prior.png", product.ImageURL)
	})
}

func TestEngine_CancelledTaskExitsAtCheckpoint(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
	})
	require.NoError(t, f.tasks.Cancel(ctx, task.ID))

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCancelled, result.Status)
	assert.Zero(t, f.designer.calls)

	_, err := f.products.GetByTaskID(ctx, task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEngine_HDQualityFromTier(t *testing.T) {
	f, ctx := newFixture(t)

	_, err := f.client.Tier.Create().
		SetName("sapphire").
		SetMinAmount(2500).
		SetDisplayName("Sapphire").
		SetHd(true).
		Save(ctx)
	require.NoError(t, err)

	donation, err := f.donations.UpsertByIntent(ctx, models.UpsertDonationRequest{
		PaymentIntentID: "pi_hd",
		Amount:          2500,
		Status:          "succeeded",
		Type:            models.DonationTypeCommission,
		CommissionType:  models.CommissionRandomSubreddit,
		Subreddit:       "golf",
		Tier:            "sapphire",
	})
	require.NoError(t, err)

	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:       models.TaskTypeSubredditPost,
		Subreddit:  "golf",
		DonationID: donation.ID,
		Priority:   models.PriorityCommission,
	})

	result := f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
	assert.Equal(t, llm.QualityHD, f.imageGen.quality)

	product, err := f.products.GetByTaskID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, productinfo.ImageQualityHd, product.ImageQuality)
	require.NotNil(t, product.DonationID)
	assert.Equal(t, donation.ID, *product.DonationID)
}

func TestEngine_ProductCreateIsIdempotentOnResume(t *testing.T) {
	f, ctx := newFixture(t)
	task := f.enqueue(t, ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
	})

	result := f.engine.Execute(ctx, task)
	require.Equal(t, pipelinetask.StatusCompleted, result.Status)

	// A replayed final attempt must not create a second product.
	task, err := f.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	result = f.engine.Execute(ctx, task)
	assert.Equal(t, pipelinetask.StatusCompleted, result.Status)

	_, total, err := f.products.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestClipRunes(t *testing.T) {
	assert.Equal(t, "abc", clipRunes("abc", 10))

	got := clipRunes(strings.Repeat("é", 150), 200)
	assert.Len(t, got, 200)
	assert.True(t, utf8.ValidString(got))

	// An odd cap lands mid-rune and backs up to the boundary.
	assert.Equal(t, strings.Repeat("é", 2), clipRunes(strings.Repeat("é", 3), 5))
}
