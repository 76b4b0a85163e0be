package queue

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/db/repository"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// Retention sweeps stored analysis snapshots older than MaxAge.
type Retention struct {
	snapshotRepo repository.SnapshotRepository
	maxAge       time.Duration
	interval     time.Duration
}

// NewRetention creates a retention sweeper. A zero maxAge disables it.
func NewRetention(snapshotRepo repository.SnapshotRepository, maxAge, interval time.Duration) *Retention {
	return &Retention{
		snapshotRepo: snapshotRepo,
		maxAge:       maxAge,
		interval:     interval,
	}
}

// Run sweeps once immediately, then on every interval tick until the context
// is cancelled. It returns without sweeping when maxAge is zero.
func (r *Retention) Run(ctx context.Context) {
	if r.maxAge <= 0 {
		logger.Log.Info("snapshot retention disabled")
		return
	}

	r.Sweep(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep deletes snapshots older than MaxAge and logs the count.
func (r *Retention) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.maxAge)

	deleted, err := r.snapshotRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Log.Error("snapshot retention sweep failed", zap.Error(err))
		return
	}

	if deleted > 0 {
		logger.Log.Info("expired snapshots deleted",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff),
		)
	}
}
