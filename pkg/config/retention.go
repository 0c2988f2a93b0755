package config

import "time"

// RetentionConfig controls how long finished work products are kept.
type RetentionConfig struct {
	// EventTTL is how long persisted WebSocket catchup events are kept.
	EventTTL time.Duration

	// TaskRetention is how long failed and cancelled tasks are kept before
	// pruning. Completed tasks are never pruned.
	TaskRetention time.Duration

	// SweepInterval is how often the retention sweep runs.
	SweepInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		EventTTL:      24 * time.Hour,
		TaskRetention: 30 * 24 * time.Hour,
		SweepInterval: time.Hour,
	}
}

func loadRetentionConfig() RetentionConfig {
	cfg := DefaultRetentionConfig()
	if hours := getEnvInt("EVENT_TTL_HOURS", 0); hours > 0 {
		cfg.EventTTL = time.Duration(hours) * time.Hour
	}
	if days := getEnvInt("TASK_RETENTION_DAYS", 0); days > 0 {
		cfg.TaskRetention = time.Duration(days) * 24 * time.Hour
	}
	return cfg
}
