package workers

import (
	"chat-relay/contract"
	"context"
	"log/slog"
	"time"
)

// PresenceSweeper periodically asks the presence tracker to expire users
// whose heartbeats stopped. A failed sweep is logged and the next tick
// tries again.
type PresenceSweeper struct {
	log      *slog.Logger
	sweeper  contract.ISweeper
	interval time.Duration
}

func NewPresenceSweeper(log *slog.Logger, sweeper contract.ISweeper, interval time.Duration) *PresenceSweeper {
	return &PresenceSweeper{log: log, sweeper: sweeper, interval: interval}
}

func (w *PresenceSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping presence sweep")
			return nil
		case <-ticker.C:
			expired, err := w.sweeper.Sweep(ctx)
			if err != nil {
				w.log.Warn("Presence sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				w.log.Info("Presence sweep expired users", "count", expired)
			}
		}
	}
}
