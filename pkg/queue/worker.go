package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// eventCleanupGrace is how long persisted WebSocket events outlive a finished
// task, so slow clients can still catch up on the final transitions.
const eventCleanupGrace = 60 * time.Second

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id        string
	processID string
	client    *ent.Client
	config    config.QueueConfig
	tasks     *services.TaskService
	executor  TaskExecutor
	broker    *events.ProgressBroker
	eventsSvc *services.EventService
	pool      TaskRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
// broker may be nil (progress recording disabled).
// eventsSvc may be nil (event cleanup disabled).
func NewWorker(id, processID string, client *ent.Client, cfg config.QueueConfig, tasks *services.TaskService, executor TaskExecutor, pool TaskRegistry, broker *events.ProgressBroker, eventsSvc *services.EventService) *Worker {
	return &Worker{
		id:           id,
		processID:    processID,
		client:       client,
		config:       cfg,
		tasks:        tasks,
		executor:     executor,
		broker:       broker,
		eventsSvc:    eventsSvc,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "process_id", w.processID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.PipelineTask.Query().
		Where(pipelinetask.StatusEQ(pipelinetask.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim the highest-priority eligible task.
	task, err := w.tasks.ClaimNext(ctx, w.id, w.config.LeaseTTL)
	if err != nil {
		if errors.Is(err, services.ErrNoWork) {
			return ErrNoTasksAvailable
		}
		return err
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id, "type", task.Type, "attempt", task.Attempt)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout.
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation.
	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	// 5. Keep the lease alive while the executor runs. If the lease is lost
	// (API cancel, sweeper recovery after a stall) the task context is
	// cancelled and another worker may own the task, so no terminal write
	// happens here.
	var leaseLost atomic.Bool
	renewCtx, cancelRenew := context.WithCancel(taskCtx)
	defer cancelRenew()
	go w.runLeaseRenewal(renewCtx, task.ID, &leaseLost, cancelTask)

	// 6. Execute the task.
	result := w.executor.Execute(taskCtx, task)
	result = w.normalizeResult(taskCtx, result)

	// 7. Stop renewing before the terminal transition.
	cancelRenew()

	if leaseLost.Load() {
		log.Warn("Lease lost during execution, abandoning task")
		return nil
	}

	// 8. Terminal transition (background context — task ctx may be cancelled).
	if err := w.finishTask(context.Background(), task, result); err != nil {
		log.Error("Failed to record task outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// runLeaseRenewal extends the worker's lease at a third of the TTL. A failed
// conditional renewal means ownership is gone and execution must stop.
func (w *Worker) runLeaseRenewal(ctx context.Context, taskID string, leaseLost *atomic.Bool, cancelTask context.CancelFunc) {
	ticker := time.NewTicker(w.config.RenewInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.tasks.RenewLease(ctx, taskID, w.id, time.Now().Add(w.config.LeaseTTL))
			if err == nil {
				continue
			}
			if errors.Is(err, services.ErrLeaseLost) {
				leaseLost.Store(true)
				cancelTask()
				return
			}
			// Transient DB error: keep trying, the lease has TTL/3 slack.
			slog.Warn("Lease renewal failed", "task_id", taskID, "error", err)
		}
	}
}

// normalizeResult guards against nil results and fills in timeout and
// cancellation outcomes the executor could not classify itself.
func (w *Worker) normalizeResult(taskCtx context.Context, result *ExecutionResult) *ExecutionResult {
	if result == nil {
		result = &ExecutionResult{}
	}
	if result.Status != "" {
		return result
	}
	switch {
	case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status:    pipelinetask.StatusFailed,
			Err:       fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			Retryable: true,
		}
	case errors.Is(taskCtx.Err(), context.Canceled):
		return &ExecutionResult{
			Status: pipelinetask.StatusCancelled,
			Err:    context.Canceled,
		}
	default:
		return &ExecutionResult{
			Status: pipelinetask.StatusFailed,
			Err:    fmt.Errorf("executor returned no result"),
		}
	}
}

// finishTask writes the terminal status, records the closing progress event,
// and schedules event cleanup for terminal outcomes.
func (w *Worker) finishTask(ctx context.Context, task *ent.PipelineTask, result *ExecutionResult) error {
	switch result.Status {
	case pipelinetask.StatusCompleted:
		if err := w.tasks.Complete(ctx, task.ID); err != nil {
			return err
		}
		w.scheduleEventCleanup(task.ID)
		return nil

	case pipelinetask.StatusCancelled:
		// The cancel endpoint already moved the row to cancelled; the worker
		// only records the transition for subscribers.
		w.recordTransition(ctx, task.ID, "cancelled", "cancelled", "commission cancelled")
		w.scheduleEventCleanup(task.ID)
		return nil

	default:
		errMsg := "pipeline failed"
		if result.Err != nil {
			errMsg = result.Err.Error()
		}
		failed, err := w.tasks.Fail(ctx, task.ID, errMsg, result.Retryable)
		if err != nil {
			return err
		}
		if failed.Status == pipelinetask.StatusPending {
			w.recordTransition(ctx, task.ID, "pending", "retrying",
				fmt.Sprintf("attempt %d failed, retrying: %s", failed.Attempt, errMsg))
		} else {
			w.recordTransition(ctx, task.ID, "failed", "failed", errMsg)
			w.scheduleEventCleanup(task.ID)
		}
		return nil
	}
}

// recordTransition emits a progress event carrying the last known percent
// forward. Best-effort: history and fan-out failures are logged, not fatal.
func (w *Worker) recordTransition(ctx context.Context, taskID, status, stage, message string) {
	if w.broker == nil {
		return
	}
	percent := 0
	if snap, err := w.broker.Snapshot(ctx, taskID); err == nil && snap != nil {
		percent = snap.Percent
	}
	if err := w.broker.Record(ctx, taskID, status, stage, message, percent); err != nil {
		slog.Warn("Failed to record task transition",
			"task_id", taskID, "stage", stage, "error", err)
	}
}

// scheduleEventCleanup deletes a finished task's transient events after a
// grace period, allowing WebSocket clients to receive final events.
func (w *Worker) scheduleEventCleanup(taskID string) {
	if w.eventsSvc == nil {
		return
	}
	time.AfterFunc(eventCleanupGrace, func() {
		if _, err := w.eventsSvc.CleanupTaskEvents(context.Background(), taskID); err != nil {
			slog.Warn("Failed to cleanup task events after grace period",
				"task_id", taskID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
