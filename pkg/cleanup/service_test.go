package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/services"
	testdb "github.com/redditart/commissioner/test/database"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		EventTTL:      time.Hour,
		TaskRetention: 30 * 24 * time.Hour,
		SweepInterval: time.Hour,
	}
}

func TestService_CleansUpOldEvents(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	events := services.NewEventService(db.Client)
	tasks := services.NewTaskService(db.Client, config.DefaultQueueConfig())

	_, err := db.Client.Event.Create().
		SetTaskID("t-old").
		SetChannel("task:t-old").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = db.Client.Event.Create().
		SetTaskID("t-new").
		SetChannel("task:t-new").
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), events, tasks)
	svc.RunOnce(ctx)

	remaining, err := db.Client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining, "old event deleted, recent event preserved")
}

func TestService_PrunesOldFailedTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	events := services.NewEventService(db.Client)
	tasks := services.NewTaskService(db.Client, config.DefaultQueueConfig())

	task, err := tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
		Priority:  models.PriorityScheduled,
	})
	require.NoError(t, err)

	err = db.Client.PipelineTask.UpdateOneID(task.ID).
		SetStatus(pipelinetask.StatusFailed).
		SetCompletedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), events, tasks)
	svc.RunOnce(ctx)

	_, err = tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_KeepsCompletedAndRecentTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()
	events := services.NewEventService(db.Client)
	tasks := services.NewTaskService(db.Client, config.DefaultQueueConfig())

	completed, err := tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:     models.TaskTypeFrontPage,
		Priority: models.PriorityScheduled,
	})
	require.NoError(t, err)
	err = db.Client.PipelineTask.UpdateOneID(completed.ID).
		SetStatus(pipelinetask.StatusCompleted).
		SetCompletedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	recent, err := tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:     models.TaskTypeFrontPage,
		Priority: models.PriorityScheduled,
	})
	require.NoError(t, err)
	err = db.Client.PipelineTask.UpdateOneID(recent.ID).
		SetStatus(pipelinetask.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), events, tasks)
	svc.RunOnce(ctx)

	_, err = tasks.GetByID(ctx, completed.ID)
	assert.NoError(t, err, "completed tasks are never pruned")
	_, err = tasks.GetByID(ctx, recent.ID)
	assert.NoError(t, err, "recent cancelled task is inside the retention window")
}

func TestService_StartStop(t *testing.T) {
	db := testdb.NewTestClient(t)
	events := services.NewEventService(db.Client)
	tasks := services.NewTaskService(db.Client, config.DefaultQueueConfig())

	svc := NewService(retentionConfig(), events, tasks)
	svc.Start(context.Background())
	svc.Stop()
}
