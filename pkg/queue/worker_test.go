package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/services"
	testdb "github.com/redditart/commissioner/test/database"
)

// stubExecutor returns a canned result per task and records what it saw.
type stubExecutor struct {
	mu       sync.Mutex
	executed []string
	result   func(task *ent.PipelineTask) *ExecutionResult
	block    chan struct{} // when non-nil, Execute waits for close or ctx
}

func (s *stubExecutor) Execute(ctx context.Context, task *ent.PipelineTask) *ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, task.ID)
	s.mu.Unlock()

	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return &ExecutionResult{Status: pipelinetask.StatusCancelled, Err: ctx.Err()}
		}
	}
	if s.result != nil {
		return s.result(task)
	}
	return &ExecutionResult{Status: pipelinetask.StatusCompleted}
}

func (s *stubExecutor) executedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.executed)
}

func quickQueueConfig() config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.LeaseTTL = 30 * time.Second
	cfg.TaskTimeout = 5 * time.Second
	return cfg
}

func newQueueFixture(t *testing.T, cfg config.QueueConfig, executor TaskExecutor) (*WorkerPool, *services.TaskService, context.Context) {
	t.Helper()
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client, cfg)
	pool := NewWorkerPool("test-proc", client.Client, cfg, tasks, executor, nil, nil)
	return pool, tasks, context.Background()
}

func enqueue(t *testing.T, tasks *services.TaskService, ctx context.Context) *ent.PipelineTask {
	t.Helper()
	task, err := tasks.Enqueue(ctx, models.EnqueueTaskRequest{
		Type:      models.TaskTypeSubredditPost,
		Subreddit: "golf",
		Priority:  models.PriorityCommission,
	})
	require.NoError(t, err)
	return task
}

func waitForStatus(t *testing.T, tasks *services.TaskService, ctx context.Context, taskID string, want pipelinetask.Status) *ent.PipelineTask {
	t.Helper()
	var got *ent.PipelineTask
	require.Eventually(t, func() bool {
		task, err := tasks.GetByID(ctx, taskID)
		if err != nil {
			return false
		}
		got = task
		return task.Status == want
	}, 5*time.Second, 20*time.Millisecond)
	return got
}

func TestWorker_ProcessesTaskToCompletion(t *testing.T) {
	executor := &stubExecutor{}
	pool, tasks, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	task := enqueue(t, tasks, ctx)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	done := waitForStatus(t, tasks, ctx, task.ID, pipelinetask.StatusCompleted)
	assert.Nil(t, done.LeaseOwner)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, 1, executor.executedCount())
}

func TestWorker_RetryableFailureRequeues(t *testing.T) {
	executor := &stubExecutor{
		result: func(*ent.PipelineTask) *ExecutionResult {
			return &ExecutionResult{
				Status:    pipelinetask.StatusFailed,
				Err:       errors.New("upstream hiccup"),
				Retryable: true,
			}
		},
	}
	cfg := quickQueueConfig()
	cfg.RetryBackoffBase = time.Hour // keep the retry out of reach
	pool, tasks, ctx := newQueueFixture(t, cfg, executor)

	task := enqueue(t, tasks, ctx)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		got, err := tasks.GetByID(ctx, task.ID)
		return err == nil && got.Status == pipelinetask.StatusPending && got.Attempt == 1
	}, 5*time.Second, 20*time.Millisecond)

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NotBefore)
	assert.True(t, got.NotBefore.After(time.Now()))
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "upstream hiccup", *got.ErrorMessage)
}

func TestWorker_NonRetryableFailureIsTerminal(t *testing.T) {
	executor := &stubExecutor{
		result: func(*ent.PipelineTask) *ExecutionResult {
			return &ExecutionResult{
				Status: pipelinetask.StatusFailed,
				Err:    errors.New("content policy refusal"),
			}
		},
	}
	pool, tasks, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	task := enqueue(t, tasks, ctx)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	failed := waitForStatus(t, tasks, ctx, task.ID, pipelinetask.StatusFailed)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "content policy refusal", *failed.ErrorMessage)
	assert.NotNil(t, failed.CompletedAt)
}

func TestWorker_CancelInterruptsExecution(t *testing.T) {
	executor := &stubExecutor{block: make(chan struct{})}
	pool, tasks, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	task := enqueue(t, tasks, ctx)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Wait until the executor holds the task.
	require.Eventually(t, func() bool {
		return executor.executedCount() == 1
	}, 5*time.Second, 20*time.Millisecond)

	// Row-level cancel first (what the API does), then the local interrupt.
	require.NoError(t, tasks.Cancel(ctx, task.ID))
	assert.True(t, pool.CancelTask(task.ID))

	got := waitForStatus(t, tasks, ctx, task.ID, pipelinetask.StatusCancelled)
	assert.Nil(t, got.LeaseOwner)
}

func TestWorker_NormalizeResult(t *testing.T) {
	w := &Worker{config: quickQueueConfig()}

	t.Run("nil result without ctx error is a failure", func(t *testing.T) {
		result := w.normalizeResult(context.Background(), nil)
		assert.Equal(t, pipelinetask.StatusFailed, result.Status)
		assert.False(t, result.Retryable)
	})

	t.Run("deadline maps to retryable failure", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		result := w.normalizeResult(ctx, &ExecutionResult{})
		assert.Equal(t, pipelinetask.StatusFailed, result.Status)
		assert.True(t, result.Retryable)
	})

	t.Run("cancellation maps to cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result := w.normalizeResult(ctx, nil)
		assert.Equal(t, pipelinetask.StatusCancelled, result.Status)
	})

	t.Run("explicit status passes through", func(t *testing.T) {
		result := w.normalizeResult(context.Background(), &ExecutionResult{Status: pipelinetask.StatusCompleted})
		assert.Equal(t, pipelinetask.StatusCompleted, result.Status)
	})
}

func TestWorker_PollIntervalJitter(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond
	w := &Worker{config: cfg}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}

	cfg.PollIntervalJitter = 0
	w = &Worker{config: cfg}
	assert.Equal(t, time.Second, w.pollInterval())
}
