package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/services"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	processID string
	client    *ent.Client
	config    config.QueueConfig
	tasks     *services.TaskService
	executor  TaskExecutor
	broker    *events.ProgressBroker
	eventsSvc *services.EventService
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Sweeper state
	sweeper sweeperState
}

// NewWorkerPool creates a new worker pool.
// broker and eventsSvc may be nil (progress streaming and cleanup disabled).
func NewWorkerPool(processID string, client *ent.Client, cfg config.QueueConfig, tasks *services.TaskService, executor TaskExecutor, broker *events.ProgressBroker, eventsSvc *services.EventService) *WorkerPool {
	return &WorkerPool{
		processID:   processID,
		client:      client,
		config:      cfg,
		tasks:       tasks,
		executor:    executor,
		broker:      broker,
		eventsSvc:   eventsSvc,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Start recovers leases left over from a previous run, then spawns worker
// goroutines and the periodic lease sweeper.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "process_id", p.processID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "process_id", p.processID, "worker_count", p.config.WorkerCount)

	// A previous run of this process cannot renew its leases anymore, so
	// expire them outright, then let the startup sweep reclaim everything
	// expired before workers start polling.
	if n, err := p.tasks.ExpireProcessLeases(ctx, p.processID+"-worker-", time.Now()); err != nil {
		slog.Error("Startup lease expiry failed", "error", err)
	} else if n > 0 {
		slog.Info("Expired leases from previous run", "process_id", p.processID, "count", n)
	}
	if err := p.sweepExpiredLeases(ctx); err != nil {
		slog.Error("Startup lease sweep failed", "error", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.processID, i)
		worker := NewWorker(workerID, p.processID, p.client, p.config, p.tasks, p.executor, p, p.broker, p.eventsSvc)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runSweeper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active tasks to complete",
			"count", len(active),
			"task_ids", active)
	}

	// Signal all workers to stop (they finish current tasks)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal the sweeper to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterTask stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask triggers context cancellation for a task running in this process.
// Returns true if the task was found and cancelled here. The row-level cancel
// is the caller's responsibility; this only interrupts the local executor.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.tasks.PendingCount(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"process_id", p.processID,
			"error", errQ)
	}

	activeTasks, errA := p.client.PipelineTask.Query().
		Where(pipelinetask.StatusEQ(pipelinetask.StatusInProgress)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active tasks for health check",
			"process_id", p.processID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeTasks <= p.config.MaxConcurrentTasks && dbHealthy

	p.sweeper.mu.Lock()
	lastSweep := p.sweeper.lastSweep
	leasesRecovered := p.sweeper.leasesRecovered
	p.sweeper.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active tasks query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		ProcessID:       p.processID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveTasks:     activeTasks,
		MaxConcurrent:   p.config.MaxConcurrentTasks,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastSweep:       lastSweep,
		LeasesRecovered: leasesRecovered,
	}
}

// getActiveTaskIDs returns IDs of currently processing tasks (for logging).
func (p *WorkerPool) getActiveTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tasks := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		tasks = append(tasks, id)
	}
	return tasks
}
