// Package agents contains the periodic social-platform actors: the community
// agent that tends the home subreddits and the promoter agent that scouts
// public feeds for artwork-worthy posts. Both share the same runner loop:
// period with jitter, heartbeat, dry-run, dedup, and a write token bucket.
package agents

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/redditart/commissioner/pkg/config"
)

// Agent is one periodic actor. RunCycle performs a single scan-and-act pass;
// it must be safe to call repeatedly and honor ctx cancellation.
type Agent interface {
	ID() string
	RunCycle(ctx context.Context) error
}

// Runner drives an agent's polling loop.
type Runner struct {
	agent       Agent
	cfg         config.AgentConfig
	singleCycle bool
}

// NewRunner creates a runner for the agent. When singleCycle is set the
// runner performs exactly one pass and exits.
func NewRunner(agent Agent, cfg config.AgentConfig, singleCycle bool) *Runner {
	return &Runner{agent: agent, cfg: cfg, singleCycle: singleCycle}
}

// Run executes cycles until ctx is cancelled. It returns an error when
// MaxConsecutiveFailures cycles fail in a row, which the entrypoint turns
// into a non-zero exit.
func (r *Runner) Run(ctx context.Context) error {
	log := slog.With("agent_id", r.agent.ID())
	log.Info("Agent started", "period", r.cfg.Period, "dry_run", r.cfg.DryRun, "single_cycle", r.singleCycle)

	failures := 0
	for {
		err := r.agent.RunCycle(ctx)
		r.touchHeartbeat(log)

		if err != nil {
			failures++
			log.Error("Agent cycle failed", "error", err, "consecutive_failures", failures)
			if failures >= r.cfg.MaxConsecutiveFailures {
				return fmt.Errorf("%d consecutive cycle failures, last: %w", failures, err)
			}
		} else {
			failures = 0
		}

		if r.singleCycle {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("Agent shutting down")
			return nil
		case <-time.After(r.periodWithJitter()):
		}
	}
}

// periodWithJitter spreads cycles by ±10% so multiple agents do not align.
func (r *Runner) periodWithJitter() time.Duration {
	base := r.cfg.Period
	jitter := base / 10
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// touchHeartbeat records cycle liveness for external probes.
func (r *Runner) touchHeartbeat(log *slog.Logger) {
	if r.cfg.HeartbeatPath == "" {
		return
	}
	stamp := time.Now().UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(r.cfg.HeartbeatPath, []byte(stamp), 0o644); err != nil {
		log.Warn("Failed to write heartbeat", "path", r.cfg.HeartbeatPath, "error", err)
	}
}
