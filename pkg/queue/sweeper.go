package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sweeperState tracks lease sweep metrics (thread-safe).
type sweeperState struct {
	mu              sync.Mutex
	lastSweep       time.Time
	leasesRecovered int
}

// runSweeper periodically returns expired leases to the queue. All processes
// run this independently; the underlying recovery is idempotent.
func (p *WorkerPool) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(p.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweepExpiredLeases(ctx); err != nil {
				slog.Error("Lease sweep failed", "error", err)
			}
		}
	}
}

// sweepExpiredLeases moves in_progress tasks with expired leases back to
// pending, or to failed when their attempts are exhausted. A task held by a
// live worker is never touched: its lease is renewed at a third of the TTL.
func (p *WorkerPool) sweepExpiredLeases(ctx context.Context) error {
	n, err := p.tasks.RecoverExpiredLeases(ctx, time.Now())
	if err != nil {
		return err
	}

	if n > 0 {
		slog.Warn("Recovered expired task leases", "count", n)
	}

	p.sweeper.mu.Lock()
	p.sweeper.lastSweep = time.Now()
	p.sweeper.leasesRecovered += n
	p.sweeper.mu.Unlock()

	return nil
}
