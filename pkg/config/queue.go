package config

import (
	"fmt"
	"time"
)

// QueueConfig contains task queue and worker pool configuration.
// These values control how pipeline tasks are polled, claimed, leased,
// retried, and swept.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per process.
	WorkerCount int

	// MaxConcurrentTasks is the global limit of concurrent in_progress tasks
	// across all processes. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// LeaseTTL is the duration of a worker's claim on a task. Workers renew
	// at LeaseTTL/3; tasks whose lease expires are swept back to pending.
	LeaseTTL time.Duration

	// SweepInterval is how often the expired-lease sweep runs. Must be at
	// most LeaseTTL so a crashed worker's task is recovered within one TTL.
	SweepInterval time.Duration

	// TaskTimeout is the maximum wall-clock time one pipeline run may take.
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active tasks to
	// finish during shutdown.
	GracefulShutdownTimeout time.Duration

	// MaxAttempts is the retry cap for retryable failures.
	MaxAttempts int

	// RetryBackoffBase is the first retry delay; doubles per attempt.
	RetryBackoffBase time.Duration

	// RetryBackoffCap bounds the exponential backoff.
	RetryBackoffCap time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		WorkerCount:             3,
		MaxConcurrentTasks:      3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseTTL:                10 * time.Minute,
		SweepInterval:           5 * time.Minute,
		TaskTimeout:             15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		MaxAttempts:             5,
		RetryBackoffBase:        1 * time.Second,
		RetryBackoffCap:         5 * time.Minute,
	}
}

func loadQueueConfig() QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("WORKER_CONCURRENCY", cfg.WorkerCount)
	cfg.MaxConcurrentTasks = getEnvInt("MAX_CONCURRENT_TASKS", cfg.MaxConcurrentTasks)
	cfg.LeaseTTL = getEnvSeconds("LEASE_TTL_SECONDS", cfg.LeaseTTL)
	if cfg.SweepInterval > cfg.LeaseTTL {
		cfg.SweepInterval = cfg.LeaseTTL
	}
	return cfg
}

// Validate checks invariants that would otherwise surface as stuck queues.
func (c QueueConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.WorkerCount)
	}
	if c.LeaseTTL <= 0 {
		return fmt.Errorf("lease TTL must be positive, got %v", c.LeaseTTL)
	}
	if c.SweepInterval > c.LeaseTTL {
		return fmt.Errorf("sweep interval %v exceeds lease TTL %v", c.SweepInterval, c.LeaseTTL)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// RenewInterval is how often a running worker renews its lease.
// One third of the TTL keeps at least two renewal chances per lease window.
func (c QueueConfig) RenewInterval() time.Duration {
	return c.LeaseTTL / 3
}

// BackoffDelay returns the retry delay for the given attempt (1-based):
// base, 2*base, 4*base, ... capped at RetryBackoffCap.
func (c QueueConfig) BackoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := c.RetryBackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= c.RetryBackoffCap {
			return c.RetryBackoffCap
		}
	}
	if d > c.RetryBackoffCap {
		return c.RetryBackoffCap
	}
	return d
}
