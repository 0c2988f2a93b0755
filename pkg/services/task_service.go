package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/models"
)

// TaskService owns pipeline task rows: enqueue, lease-based claiming,
// retries, and recovery. Exclusion between workers is entirely through row
// locks and the lease columns; there is no in-process coordination.
type TaskService struct {
	client *ent.Client
	queue  config.QueueConfig
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, queue config.QueueConfig) *TaskService {
	return &TaskService{client: client, queue: queue}
}

// Enqueue creates a pending task.
func (s *TaskService) Enqueue(ctx context.Context, req models.EnqueueTaskRequest) (*ent.PipelineTask, error) {
	switch req.Type {
	case models.TaskTypeSubredditPost, models.TaskTypeFrontPage, models.TaskTypeSpecificPost:
	default:
		return nil, NewValidationError("type", fmt.Sprintf("unknown task type %q", req.Type))
	}
	if req.Type == models.TaskTypeSubredditPost && req.Subreddit == "" {
		return nil, NewValidationError("subreddit", "is required for subreddit_post tasks")
	}
	if req.Type == models.TaskTypeSpecificPost && req.PostID == "" {
		return nil, NewValidationError("post_id", "is required for specific_post tasks")
	}

	create := s.client.PipelineTask.Create().
		SetType(pipelinetask.Type(req.Type)).
		SetPriority(req.Priority)
	if req.DonationID != "" {
		create.SetDonationID(req.DonationID)
	}
	if req.Subreddit != "" {
		create.SetSubreddit(req.Subreddit)
	}
	if req.PostID != "" {
		create.SetPostID(req.PostID)
	}
	if req.Metadata != nil {
		create.SetMetadata(req.Metadata)
	}

	task, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}
	return task, nil
}

// ClaimNext atomically claims the highest-priority pending task for the
// given worker. FOR UPDATE SKIP LOCKED lets concurrent claimers pass over
// rows another transaction is claiming instead of blocking on them. Returns
// ErrNoWork when nothing is eligible.
func (s *TaskService) ClaimNext(ctx context.Context, workerToken string, leaseTTL time.Duration) (*ent.PipelineTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	task, err := tx.PipelineTask.Query().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusPending),
			pipelinetask.Or(
				pipelinetask.NotBeforeIsNil(),
				pipelinetask.NotBeforeLTE(now),
			),
		).
		Order(ent.Desc(pipelinetask.FieldPriority), ent.Asc(pipelinetask.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWork
		}
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	update := task.Update().
		SetStatus(pipelinetask.StatusInProgress).
		SetLeaseOwner(workerToken).
		SetLeaseExpiresAt(now.Add(leaseTTL)).
		ClearNotBefore()
	if task.StartedAt == nil {
		update.SetStartedAt(now)
	}
	claimed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// RenewLease extends the lease. Succeeds only while the caller still owns
// it; otherwise ErrLeaseLost and the worker must abandon the task.
func (s *TaskService) RenewLease(ctx context.Context, taskID, workerToken string, newExpiry time.Time) error {
	n, err := s.client.PipelineTask.Update().
		Where(
			pipelinetask.IDEQ(taskID),
			pipelinetask.StatusEQ(pipelinetask.StatusInProgress),
			pipelinetask.LeaseOwnerEQ(workerToken),
		).
		SetLeaseExpiresAt(newExpiry).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to renew lease: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Complete marks a task completed and releases its lease.
func (s *TaskService) Complete(ctx context.Context, taskID string) error {
	n, err := s.client.PipelineTask.Update().
		Where(
			pipelinetask.IDEQ(taskID),
			pipelinetask.StatusEQ(pipelinetask.StatusInProgress),
		).
		SetStatus(pipelinetask.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Fail records a failure. Retryable failures return the task to pending
// with exponential backoff until attempts are exhausted; non-retryable
// failures (and exhausted ones) are terminal.
func (s *TaskService) Fail(ctx context.Context, taskID, errMsg string, retryable bool) (*ent.PipelineTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.PipelineTask.Query().
		Where(pipelinetask.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	nextAttempt := task.Attempt + 1
	update := task.Update().
		SetAttempt(nextAttempt).
		SetErrorMessage(errMsg).
		ClearLeaseOwner().
		ClearLeaseExpiresAt()

	if retryable && nextAttempt < s.queue.MaxAttempts {
		update.
			SetStatus(pipelinetask.StatusPending).
			SetNotBefore(time.Now().Add(s.queue.BackoffDelay(nextAttempt)))
	} else {
		update.
			SetStatus(pipelinetask.StatusFailed).
			SetCompletedAt(time.Now())
	}

	failed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record task failure: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task failure: %w", err)
	}
	return failed, nil
}

// Cancel flips a non-terminal task to cancelled. The pipeline observes the
// status at its next checkpoint and exits; cancellation is not preemptive.
// Cancelling an already-cancelled task is a no-op.
func (s *TaskService) Cancel(ctx context.Context, taskID string) error {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	switch task.Status {
	case pipelinetask.StatusCancelled:
		return nil
	case pipelinetask.StatusCompleted, pipelinetask.StatusFailed:
		return fmt.Errorf("%w: task %s is already %s", ErrInvalidInput, taskID, task.Status)
	}

	n, err := s.client.PipelineTask.Update().
		Where(
			pipelinetask.IDEQ(taskID),
			pipelinetask.StatusIn(pipelinetask.StatusPending, pipelinetask.StatusInProgress),
		).
		SetStatus(pipelinetask.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}
	if n == 0 {
		// Lost the race to a terminal transition.
		return fmt.Errorf("%w: task %s reached a terminal state", ErrInvalidInput, taskID)
	}
	return nil
}

// ExpireProcessLeases force-expires leases held by workers of the given
// process. A restarting process calls this with its own worker prefix so the
// startup sweep reclaims its abandoned tasks immediately instead of waiting
// out the TTL. Returns the number of leases expired.
func (s *TaskService) ExpireProcessLeases(ctx context.Context, ownerPrefix string, now time.Time) (int, error) {
	n, err := s.client.PipelineTask.Update().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusInProgress),
			pipelinetask.LeaseOwnerHasPrefix(ownerPrefix),
		).
		SetLeaseExpiresAt(now.Add(-time.Second)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire process leases: %w", err)
	}
	return n, nil
}

// RecoverExpiredLeases returns in_progress tasks with expired leases to
// pending (attempt incremented), failing those with attempts exhausted.
// Returns the number of tasks touched. Run by the sweeper and once at
// startup.
func (s *TaskService) RecoverExpiredLeases(ctx context.Context, now time.Time) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	recovered, err := tx.PipelineTask.Update().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusInProgress),
			pipelinetask.LeaseExpiresAtLT(now),
			pipelinetask.AttemptLT(s.queue.MaxAttempts-1),
		).
		SetStatus(pipelinetask.StatusPending).
		AddAttempt(1).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover expired leases: %w", err)
	}

	exhausted, err := tx.PipelineTask.Update().
		Where(
			pipelinetask.StatusEQ(pipelinetask.StatusInProgress),
			pipelinetask.LeaseExpiresAtLT(now),
		).
		SetStatus(pipelinetask.StatusFailed).
		SetErrorMessage("lease expired with retry attempts exhausted").
		SetCompletedAt(now).
		AddAttempt(1).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail exhausted leases: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit lease recovery: %w", err)
	}
	return recovered + exhausted, nil
}

// GetByID fetches a task.
func (s *TaskService) GetByID(ctx context.Context, taskID string) (*ent.PipelineTask, error) {
	task, err := s.client.PipelineTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetByDonationID fetches the task created for a donation.
func (s *TaskService) GetByDonationID(ctx context.Context, donationID string) (*ent.PipelineTask, error) {
	task, err := s.client.PipelineTask.Query().
		Where(pipelinetask.DonationIDEQ(donationID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task by donation: %w", err)
	}
	return task, nil
}

// List returns tasks newest first. Without a status filter only non-terminal
// tasks are returned.
func (s *TaskService) List(ctx context.Context, status string, limit, offset int) ([]*ent.PipelineTask, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// Empty status means non-terminal tasks; callers pass an explicit
	// status to see terminal ones.
	query := s.client.PipelineTask.Query()
	if status != "" {
		query = query.Where(pipelinetask.StatusEQ(pipelinetask.Status(status)))
	} else {
		query = query.Where(pipelinetask.StatusIn(
			pipelinetask.StatusPending, pipelinetask.StatusInProgress))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	tasks, err := query.
		Order(ent.Desc(pipelinetask.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// PruneFinished deletes failed and cancelled tasks whose terminal
// transition is older than the cutoff. Completed tasks are kept: their
// ids anchor the product and donation history.
func (s *TaskService) PruneFinished(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.PipelineTask.Delete().
		Where(
			pipelinetask.StatusIn(pipelinetask.StatusFailed, pipelinetask.StatusCancelled),
			pipelinetask.CompletedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune finished tasks: %w", err)
	}
	return n, nil
}

// PendingCount returns the number of claimable tasks.
func (s *TaskService) PendingCount(ctx context.Context) (int, error) {
	n, err := s.client.PipelineTask.Query().
		Where(pipelinetask.StatusEQ(pipelinetask.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return n, nil
}
