package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// SnapshotWorker backs the store up into dest on every tick and once more
// when it stops, so a clean shutdown always leaves a fresh copy.
type SnapshotWorker struct {
	log      *slog.Logger
	store    contract.ISnapshotStore
	dest     string
	interval time.Duration
}

func NewSnapshotWorker(log *slog.Logger, store contract.ISnapshotStore, dest string, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{log: log, store: store, dest: dest, interval: interval}
}

func (w *SnapshotWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.snapshot()
			return nil
		case <-ticker.C:
			w.snapshot()
		}
	}
}

func (w *SnapshotWorker) snapshot() {
	start := time.Now()
	if err := w.store.Snapshot(w.dest); err != nil {
		observability.Snapshots.WithLabelValues("error").Inc()
		w.log.Error("Snapshot failed", "dest", w.dest, "error", err)
		return
	}
	observability.Snapshots.WithLabelValues("ok").Inc()
	w.log.Debug("Snapshot written", "dest", w.dest, "took", time.Since(start))
}
