package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelay(t *testing.T) {
	cfg := DefaultQueueConfig()

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 1 * time.Second},
		{attempt: 2, want: 2 * time.Second},
		{attempt: 3, want: 4 * time.Second},
		{attempt: 4, want: 8 * time.Second},
		{attempt: 9, want: 256 * time.Second},
		{attempt: 10, want: 5 * time.Minute}, // capped
		{attempt: 50, want: 5 * time.Minute}, // still capped, no overflow
		{attempt: 0, want: 1 * time.Second},  // clamped to first attempt
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.BackoffDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestQueueConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultQueueConfig().Validate())
	})

	t.Run("sweep interval must not exceed lease TTL", func(t *testing.T) {
		cfg := DefaultQueueConfig()
		cfg.SweepInterval = cfg.LeaseTTL + time.Minute
		assert.Error(t, cfg.Validate())
	})

	t.Run("worker count must be positive", func(t *testing.T) {
		cfg := DefaultQueueConfig()
		cfg.WorkerCount = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "7")
	t.Setenv("LEASE_TTL_SECONDS", "120")
	t.Setenv("AGENT_PERIOD_MINUTES", "30")
	t.Setenv("AGENT_DRY_RUN", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EVENT_TTL_HOURS", "6")
	t.Setenv("TASK_RETENTION_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Minute, cfg.Queue.LeaseTTL)
	// Sweep interval is clamped to the (short) lease TTL.
	assert.LessOrEqual(t, cfg.Queue.SweepInterval, cfg.Queue.LeaseTTL)
	assert.Equal(t, 30*time.Minute, cfg.Agent.Period)
	assert.True(t, cfg.Agent.DryRun)
	assert.Equal(t, 6*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.TaskRetention)
}

func TestRenewInterval(t *testing.T) {
	cfg := DefaultQueueConfig()
	// Renewal must happen at least twice per lease window.
	assert.LessOrEqual(t, cfg.RenewInterval(), cfg.LeaseTTL/2)
}
