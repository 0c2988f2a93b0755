package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/models"
	testdb "github.com/redditart/commissioner/test/database"
)

func newTaskService(t *testing.T) (*TaskService, context.Context) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewTaskService(client.Client, config.DefaultQueueConfig()), context.Background()
}

func TestTaskService_Enqueue(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
		Priority:  models.PriorityCommission,
	})
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, task.Status)
	assert.Equal(t, models.PriorityCommission, task.Priority)
	assert.Equal(t, 0, task.Attempt)

	t.Run("validates task type", func(t *testing.T) {
		_, err := service.Enqueue(ctx, models.EnqueueTaskRequest{Type: "mystery"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("subreddit_post requires subreddit", func(t *testing.T) {
		_, err := service.Enqueue(ctx, models.EnqueueTaskRequest{Type: models.TaskTypeSubredditPost})
		assert.True(t, IsValidationError(err))
	})

	t.Run("specific_post requires post id", func(t *testing.T) {
		_, err := service.Enqueue(ctx, models.EnqueueTaskRequest{Type: models.TaskTypeSpecificPost})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_ClaimOrder(t *testing.T) {
	service, ctx := newTaskService(t)

	low, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeFrontPage, Priority: models.PriorityFrontPage,
	})
	require.NoError(t, err)
	highOld, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf", Priority: models.PriorityCommission,
	})
	require.NoError(t, err)
	highNew, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "hiking", Priority: models.PriorityCommission,
	})
	require.NoError(t, err)

	// Highest priority first; FIFO within equal priority.
	first, err := service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, highOld.ID, first.ID)
	assert.Equal(t, pipelinetask.StatusInProgress, first.Status)
	require.NotNil(t, first.LeaseOwner)
	assert.Equal(t, "w1", *first.LeaseOwner)

	second, err := service.ClaimNext(ctx, "w2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, highNew.ID, second.ID)

	third, err := service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, low.ID, third.ID)

	_, err = service.ClaimNext(ctx, "w1", time.Minute)
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestTaskService_ClaimSkipsBackoff(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)

	claimed, err := service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, task.ID, claimed.ID)

	// Retryable failure sends the task to pending with a future not_before.
	failed, err := service.Fail(ctx, task.ID, "transient blip", true)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, failed.Status)
	assert.Equal(t, 1, failed.Attempt)
	require.NotNil(t, failed.NotBefore)
	assert.True(t, failed.NotBefore.After(time.Now()))

	// Not claimable until the backoff gate passes.
	_, err = service.ClaimNext(ctx, "w1", time.Minute)
	assert.ErrorIs(t, err, ErrNoWork)
}

func TestTaskService_FailExhaustsAttempts(t *testing.T) {
	service, ctx := newTaskService(t)
	maxAttempts := service.queue.MaxAttempts

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)

	var last *testTaskState
	for i := 0; i < maxAttempts; i++ {
		failed, err := service.Fail(ctx, task.ID, "still broken", true)
		require.NoError(t, err)
		last = &testTaskState{status: failed.Status, attempt: failed.Attempt}
	}
	assert.Equal(t, pipelinetask.StatusFailed, last.status)
	assert.Equal(t, maxAttempts, last.attempt)
}

type testTaskState struct {
	status  pipelinetask.Status
	attempt int
}

func TestTaskService_FailNonRetryable(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)

	failed, err := service.Fail(ctx, task.ID, "content policy refusal", false)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "content policy refusal", *failed.ErrorMessage)
}

func TestTaskService_Lease(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)

	t.Run("owner renews", func(t *testing.T) {
		err := service.RenewLease(ctx, task.ID, "w1", time.Now().Add(2*time.Minute))
		assert.NoError(t, err)
	})

	t.Run("non-owner gets LeaseLost", func(t *testing.T) {
		err := service.RenewLease(ctx, task.ID, "w2", time.Now().Add(2*time.Minute))
		assert.ErrorIs(t, err, ErrLeaseLost)
	})

	t.Run("complete releases lease", func(t *testing.T) {
		require.NoError(t, service.Complete(ctx, task.ID))
		got, err := service.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, pipelinetask.StatusCompleted, got.Status)
		assert.Nil(t, got.LeaseOwner)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("renew after completion is LeaseLost", func(t *testing.T) {
		err := service.RenewLease(ctx, task.ID, "w1", time.Now().Add(time.Minute))
		assert.ErrorIs(t, err, ErrLeaseLost)
	})
}

func TestTaskService_RecoverExpiredLeases(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)

	// Before expiry, nothing to recover.
	n, err := service.RecoverExpiredLeases(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	// After expiry, the task returns to pending with attempt bumped.
	n, err = service.RecoverExpiredLeases(ctx, time.Now().Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempt)
	assert.Nil(t, got.LeaseOwner)
}

func TestTaskService_ExpireProcessLeases(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "pod-a-worker-0", 10*time.Minute)
	require.NoError(t, err)

	// Another process's prefix touches nothing.
	n, err := service.ExpireProcessLeases(ctx, "pod-b-worker-", time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	// Own prefix expires the lease; the sweep then reclaims it.
	n, err = service.ExpireProcessLeases(ctx, "pod-a-worker-", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = service.RecoverExpiredLeases(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, got.Status)
}

func TestTaskService_PruneFinished(t *testing.T) {
	service, ctx := newTaskService(t)

	old, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	require.NoError(t, service.Cancel(ctx, old.ID))

	n, err := service.PruneFinished(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = service.GetByID(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Pending tasks are untouched regardless of cutoff.
	keep, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	n, err = service.PruneFinished(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = service.GetByID(ctx, keep.ID)
	assert.NoError(t, err)
}

func TestTaskService_Cancel(t *testing.T) {
	service, ctx := newTaskService(t)

	task, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)

	require.NoError(t, service.Cancel(ctx, task.ID))
	got, err := service.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusCancelled, got.Status)

	// Cancelling again is a no-op.
	assert.NoError(t, service.Cancel(ctx, task.ID))

	// Completed tasks cannot be cancelled.
	done, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
		Type: models.TaskTypeSubredditPost, Subreddit: "golf",
	})
	require.NoError(t, err)
	_, err = service.ClaimNext(ctx, "w1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, service.Complete(ctx, done.ID))
	assert.ErrorIs(t, service.Cancel(ctx, done.ID), ErrInvalidInput)
}

func TestTaskService_List(t *testing.T) {
	service, ctx := newTaskService(t)

	for i := 0; i < 3; i++ {
		_, err := service.Enqueue(ctx, models.EnqueueTaskRequest{
			Type: models.TaskTypeSubredditPost, Subreddit: "golf",
		})
		require.NoError(t, err)
	}

	tasks, total, err := service.List(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, tasks, 2)

	tasks, total, err = service.List(ctx, models.TaskStatusPending, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, tasks, 3)

	tasks, total, err = service.List(ctx, models.TaskStatusCompleted, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, tasks)

	// Terminal tasks drop out of the default listing.
	require.NoError(t, service.Cancel(ctx, tasksPendingID(t, service, ctx)))
	_, total, err = service.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	_, total, err = service.List(ctx, models.TaskStatusCancelled, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

// tasksPendingID returns one pending task id.
func tasksPendingID(t *testing.T, service *TaskService, ctx context.Context) string {
	t.Helper()
	tasks, _, err := service.List(ctx, models.TaskStatusPending, 1, 0)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)
	return tasks[0].ID
}
