package config

import "time"

// AgentConfig contains settings shared by the periodic social-platform agents.
type AgentConfig struct {
	// Period is the base polling interval; jitter of ±10% is applied per cycle.
	Period time.Duration

	// DryRun performs analysis and records actions without external writes.
	DryRun bool

	// DedupWindow is how recently an (agent, target) action must exist for the
	// target to be skipped.
	DedupWindow time.Duration

	// WriteBudget is the token bucket capacity for external write actions.
	WriteBudget int

	// WriteRefill is the interval at which one write token is restored.
	WriteRefill time.Duration

	// ScoreThreshold is the minimum LLM artistic-potential score (0-10) an
	// agent requires before acting on a post.
	ScoreThreshold float64

	// HeartbeatPath is the file touched every cycle for liveness probes.
	HeartbeatPath string

	// MaxConsecutiveFailures is the cycle failure count after which the agent
	// process exits non-zero.
	MaxConsecutiveFailures int
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Period:                 15 * time.Minute,
		DryRun:                 false,
		DedupWindow:            7 * 24 * time.Hour,
		WriteBudget:            6,
		WriteRefill:            10 * time.Minute, // 6 writes/hour
		ScoreThreshold:         6.5,
		HeartbeatPath:          "/tmp/commissioner-agent-heartbeat",
		MaxConsecutiveFailures: 5,
	}
}

func loadAgentConfig() AgentConfig {
	cfg := DefaultAgentConfig()
	if mins := getEnvInt("AGENT_PERIOD_MINUTES", 0); mins > 0 {
		cfg.Period = time.Duration(mins) * time.Minute
	}
	cfg.DryRun = getEnvBool("AGENT_DRY_RUN", cfg.DryRun)
	cfg.HeartbeatPath = getEnv("AGENT_HEARTBEAT_PATH", cfg.HeartbeatPath)
	return cfg
}
