package agents

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
	testdb "github.com/redditart/commissioner/test/database"
)

// fakeRedditWriter records the writes the agents attempt.
type fakeRedditWriter struct {
	newPosts map[string][]reddit.Post
	hotPosts map[string][]reddit.Post
	comments []string // parent fullnames commented on
	votes    []string
}

func (f *fakeRedditWriter) New(_ context.Context, subreddit string, _ int) ([]reddit.Post, error) {
	return f.newPosts[subreddit], nil
}

func (f *fakeRedditWriter) Hot(_ context.Context, subreddit string, _ int) ([]reddit.Post, error) {
	return f.hotPosts[subreddit], nil
}

func (f *fakeRedditWriter) Comment(_ context.Context, parentFullname, _ string) error {
	f.comments = append(f.comments, parentFullname)
	return nil
}

func (f *fakeRedditWriter) Vote(_ context.Context, fullname string, _ int) error {
	f.votes = append(f.votes, fullname)
	return nil
}

type staticScorer struct {
	rating *llm.Rating
	err    error
}

func (s *staticScorer) Rate(context.Context, string, string, string) (*llm.Rating, error) {
	return s.rating, s.err
}

func goodRating() *llm.Rating {
	return &llm.Rating{Score: 8.0, Classification: "artistic", Text: "Lovely shot!", Reason: "strong light"}
}

func agentConfig() config.AgentConfig {
	cfg := config.DefaultAgentConfig()
	cfg.HeartbeatPath = "" // tests opt in explicitly
	return cfg
}

func newActions(t *testing.T) (*services.AgentActionService, context.Context) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewAgentActionService(client.Client), context.Background()
}

func TestPromoter_CommentsAboveThreshold(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{hotPosts: map[string][]reddit.Post{
		"popular": {
			{ID: "art1", Title: "Sunrise over the ridge", Author: "alpine_fan"},
			{ID: "nsfw1", Title: "nope", Author: "x", Over18: true},
		},
	}}
	agent := NewPromoterAgent(platform, &staticScorer{rating: goodRating()}, actions, agentConfig(), "", "https://example.com")

	require.NoError(t, agent.RunCycle(ctx))

	assert.Equal(t, []string{"t3_art1"}, platform.comments)

	recent, err := actions.ListRecent(ctx, "promoter", time.Hour)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "promote", recent[0].Kind)
	assert.Equal(t, "art1", recent[0].TargetID)
	assert.Equal(t, 8.0, recent[0].Rating["score"])
}

func TestPromoter_DedupAcrossCycles(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{hotPosts: map[string][]reddit.Post{
		"popular": {{ID: "art1", Title: "Sunrise", Author: "a"}},
	}}
	agent := NewPromoterAgent(platform, &staticScorer{rating: goodRating()}, actions, agentConfig(), "", "https://example.com")

	require.NoError(t, agent.RunCycle(ctx))
	require.NoError(t, agent.RunCycle(ctx))

	// Exactly one external write despite two cycles.
	assert.Len(t, platform.comments, 1)
	recent, err := actions.ListRecent(ctx, "promoter", time.Hour)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestPromoter_BelowThresholdRecordsSkip(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{hotPosts: map[string][]reddit.Post{
		"popular": {{ID: "plain1", Title: "My lunch", Author: "a"}},
	}}
	low := &llm.Rating{Score: 2.0, Classification: "plain", Reason: "mundane"}
	agent := NewPromoterAgent(platform, &staticScorer{rating: low}, actions, agentConfig(), "", "https://example.com")

	require.NoError(t, agent.RunCycle(ctx))

	assert.Empty(t, platform.comments)
	recent, err := actions.ListRecent(ctx, "promoter", time.Hour)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "skip", recent[0].Kind)
}

func TestPromoter_DryRunSkipsExternalWrites(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{hotPosts: map[string][]reddit.Post{
		"popular": {{ID: "art1", Title: "Sunrise", Author: "a"}},
	}}
	cfg := agentConfig()
	cfg.DryRun = true
	agent := NewPromoterAgent(platform, &staticScorer{rating: goodRating()}, actions, cfg, "", "https://example.com")

	require.NoError(t, agent.RunCycle(ctx))

	assert.Empty(t, platform.comments)
	recent, err := actions.ListRecent(ctx, "promoter", time.Hour)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "promote", recent[0].Kind)
	assert.True(t, recent[0].DryRun)
}

func TestPromoter_WriteBudgetGatesComments(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{hotPosts: map[string][]reddit.Post{
		"popular": {
			{ID: "a1", Title: "One", Author: "x"},
			{ID: "a2", Title: "Two", Author: "y"},
			{ID: "a3", Title: "Three", Author: "z"},
		},
	}}
	cfg := agentConfig()
	cfg.WriteBudget = 1
	cfg.WriteRefill = time.Hour
	agent := NewPromoterAgent(platform, &staticScorer{rating: goodRating()}, actions, cfg, "", "https://example.com")

	require.NoError(t, agent.RunCycle(ctx))

	// One write spent; deferred posts carry no action row so a later cycle
	// can pick them up once the bucket refills.
	assert.Len(t, platform.comments, 1)
	recent, err := actions.ListRecent(ctx, "promoter", time.Hour)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestCommunity_EngagesNewPosts(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{newPosts: map[string][]reddit.Post{
		"redditart": {
			{ID: "n1", Title: "My first commission!", Author: "newbie"},
			{ID: "pinned", Title: "Rules", Author: "mod", Stickied: true},
		},
	}}
	agent := NewCommunityAgent(platform, &staticScorer{rating: goodRating()}, actions, agentConfig(), []string{"r/RedditArt"})

	require.NoError(t, agent.RunCycle(ctx))

	assert.Equal(t, []string{"t3_n1"}, platform.votes)
	assert.Equal(t, []string{"t3_n1"}, platform.comments)

	recent, err := actions.ListRecent(ctx, "community", time.Hour)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "welcome", recent[0].Kind)
}

func TestCommunity_ScorerWithoutTextSkips(t *testing.T) {
	actions, ctx := newActions(t)
	platform := &fakeRedditWriter{newPosts: map[string][]reddit.Post{
		"redditart": {{ID: "n1", Title: "spam", Author: "bot"}},
	}}
	noText := &llm.Rating{Score: 9.0, Classification: "ignore"}
	agent := NewCommunityAgent(platform, &staticScorer{rating: noText}, actions, agentConfig(), []string{"redditart"})

	require.NoError(t, agent.RunCycle(ctx))

	assert.Empty(t, platform.comments)
	assert.Empty(t, platform.votes)
	recent, err := actions.ListRecent(ctx, "community", time.Hour)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "skip", recent[0].Kind)
}

// failNAgent fails its first n cycles, then succeeds.
type failNAgent struct {
	n     int
	calls int
}

func (f *failNAgent) ID() string { return "flaky" }

func (f *failNAgent) RunCycle(context.Context) error {
	f.calls++
	if f.calls <= f.n {
		return errors.New("cycle exploded")
	}
	return nil
}

func TestRunner_SingleCycle(t *testing.T) {
	cfg := agentConfig()
	agent := &failNAgent{}
	runner := NewRunner(agent, cfg, true)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 1, agent.calls)
}

func TestRunner_ExitsAfterConsecutiveFailures(t *testing.T) {
	cfg := agentConfig()
	cfg.Period = time.Millisecond
	cfg.MaxConsecutiveFailures = 3
	agent := &failNAgent{n: 100}
	runner := NewRunner(agent, cfg, false)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, agent.calls)
}

func TestRunner_FailureCountResetsOnSuccess(t *testing.T) {
	cfg := agentConfig()
	cfg.Period = time.Millisecond
	cfg.MaxConsecutiveFailures = 3
	agent := &failNAgent{n: 2} // two failures, then success
	runner := NewRunner(agent, cfg, false)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	require.NoError(t, runner.Run(ctx))
	assert.GreaterOrEqual(t, agent.calls, 3)
}

func TestRunner_WritesHeartbeat(t *testing.T) {
	cfg := agentConfig()
	cfg.HeartbeatPath = filepath.Join(t.TempDir(), "heartbeat")
	runner := NewRunner(&failNAgent{}, cfg, true)

	require.NoError(t, runner.Run(context.Background()))

	data, err := os.ReadFile(cfg.HeartbeatPath)
	require.NoError(t, err)
	_, err = time.Parse(time.RFC3339, string(data[:len(data)-1]))
	assert.NoError(t, err)
}
