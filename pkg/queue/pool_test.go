package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/ent/pipelinetask"
)

func TestPool_StartupSweepRecoversExpiredLeases(t *testing.T) {
	cfg := quickQueueConfig()
	cfg.WorkerCount = 0 // sweep only, no polling
	pool, tasks, ctx := newQueueFixture(t, cfg, nil)

	task := enqueue(t, tasks, ctx)

	// A previous process claimed the task and died; its lease is long gone.
	_, err := tasks.ClaimNext(ctx, "dead-worker", -time.Minute)
	require.NoError(t, err)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempt)
	assert.Nil(t, got.LeaseOwner)

	health := pool.Health()
	assert.Equal(t, 1, health.LeasesRecovered)
	assert.False(t, health.LastSweep.IsZero())
}

func TestPool_DoubleStartIsNoop(t *testing.T) {
	executor := &stubExecutor{}
	pool, _, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.NoError(t, pool.Start(ctx))
	assert.Len(t, pool.workers, 1)
}

func TestPool_CancelUnknownTask(t *testing.T) {
	pool, _, _ := newQueueFixture(t, quickQueueConfig(), &stubExecutor{})
	assert.False(t, pool.CancelTask("nope"))
}

func TestPool_Health(t *testing.T) {
	executor := &stubExecutor{}
	pool, tasks, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	enqueue(t, tasks, ctx)
	enqueue(t, tasks, ctx)

	health := pool.Health()
	assert.False(t, health.IsHealthy) // not started, no workers
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, "test-proc", health.ProcessID)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := tasks.PendingCount(ctx)
		return err == nil && n == 0
	}, 5*time.Second, 20*time.Millisecond)

	health = pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
}

func TestPool_GracefulStopFinishesCurrentTask(t *testing.T) {
	executor := &stubExecutor{block: make(chan struct{})}
	pool, tasks, ctx := newQueueFixture(t, quickQueueConfig(), executor)

	task := enqueue(t, tasks, ctx)

	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, func() bool {
		return executor.executedCount() == 1
	}, 5*time.Second, 20*time.Millisecond)

	// Release the executor just after Stop begins waiting.
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(executor.block)
	}()
	pool.Stop()

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinetask.StatusCompleted, got.Status)
}
