// Package cleanup enforces data retention on finished work products.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes persisted catchup events past their TTL
//   - Prunes failed and cancelled tasks past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config config.RetentionConfig
	events *services.EventService
	tasks  *services.TaskService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, events *services.EventService, tasks *services.TaskService) *Service {
	return &Service{
		config: cfg,
		events: events,
		tasks:  tasks,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"task_retention", s.config.TaskRetention,
		"interval", s.config.SweepInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies every retention policy a single time.
func (s *Service) RunOnce(ctx context.Context) {
	s.cleanupOldEvents(ctx)
	s.pruneFinishedTasks(ctx)
}

func (s *Service) cleanupOldEvents(ctx context.Context) {
	count, err := s.events.CleanupOldEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

func (s *Service) pruneFinishedTasks(ctx context.Context) {
	count, err := s.tasks.PruneFinished(ctx, time.Now().Add(-s.config.TaskRetention))
	if err != nil {
		slog.Error("Retention: task prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned finished tasks", "count", count)
	}
}
