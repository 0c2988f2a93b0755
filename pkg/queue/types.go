// Package queue provides the lease-based worker pool that drains pipeline
// tasks. Workers claim tasks with FOR UPDATE SKIP LOCKED, hold a renewable
// lease while executing, and hand the task body to a TaskExecutor. A
// background sweeper returns expired leases to the queue.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor runs one claimed pipeline task end to end.
//
// The executor owns stage sequencing, checkpointing, and progress reporting;
// it writes intermediate state progressively during execution. The worker only
// handles claiming, lease renewal, the terminal status transition, and event
// cleanup. The executor must honor ctx cancellation at stage boundaries.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.PipelineTask) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one execution attempt.
type ExecutionResult struct {
	Status    pipelinetask.Status // completed, failed, cancelled
	Err       error               // cause (if failed or cancelled)
	Retryable bool                // whether a failed attempt should be retried
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	ProcessID       string         `json:"process_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveTasks     int            `json:"active_tasks"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastSweep       time.Time      `json:"last_sweep"`
	LeasesRecovered int            `json:"leases_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
