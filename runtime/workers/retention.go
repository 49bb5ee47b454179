package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// RetentionWorker deletes old messages once at startup and then on every tick.
type RetentionWorker struct {
	log      *slog.Logger
	store    contract.IRetentionStore
	keepDays uint64
	interval time.Duration
}

func NewRetentionWorker(log *slog.Logger, store contract.IRetentionStore, keepDays uint64, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{log: log, store: store, keepDays: keepDays, interval: interval}
}

func (w *RetentionWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping retention")
			return nil
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *RetentionWorker) sweep() {
	deleted, err := w.store.RetentionSweep(w.keepDays)
	if err != nil {
		w.log.Error("Retention sweep failed", "error", err)
		return
	}
	observability.RetentionDeleted.Add(float64(deleted))
}
