package repositories

import (
	"errors"
	"math"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	dayMillis = int64(86_400_000)
	// Beyond this many days the horizon does not fit in int64 milliseconds
	maxKeepDays = uint64(math.MaxInt64 / dayMillis)
)

// RetentionSweep deletes every message older than keepDays, measured on
// server_ts, together with any row that no longer decodes.
// Reading, evaluating and deleting happen in the same write transaction so
// an append racing the sweep is never lost; only a sweep too large for one
// Badger transaction is split. It returns the number of deleted rows.
func (s *Store) RetentionSweep(keepDays uint64) (int, error) {
	cutoff := retentionCutoff(s.now(), keepDays)

	var deleted int
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		deleted, err = s.sweepOnce(cutoff)
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
		time.Sleep(conflictBackoff(attempt))
	}
	if err != nil {
		return deleted, storageErr("retention sweep", err)
	}
	if deleted > 0 {
		s.log.Info("Retention sweep done", "deleted", deleted, "keep_days", keepDays)
	}
	return deleted, nil
}

func (s *Store) sweepOnce(cutoff int64) (int, error) {
	txn := s.db.NewTransaction(true)
	defer func() { txn.Discard() }()

	var stale [][]byte
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(messagePrefix)
	it := txn.NewIterator(options)
	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		if item.ValueSize() == 0 {
			continue
		}
		rec, ok, err := s.decodeMessage(item)
		if err != nil {
			it.Close()
			return 0, err
		}
		if !ok || rec.ServerTs < cutoff {
			stale = append(stale, item.KeyCopy(nil))
		}
	}
	it.Close()

	for _, key := range stale {
		err := txn.Delete(key)
		if errors.Is(err, badger.ErrTxnTooBig) {
			if err = txn.Commit(); err != nil {
				return 0, err
			}
			txn = s.db.NewTransaction(true)
			err = txn.Delete(key)
		}
		if err != nil {
			return 0, err
		}
	}
	if err := txn.Commit(); err != nil {
		return 0, err
	}
	return len(stale), nil
}

// retentionCutoff is the oldest server_ts kept. A horizon too large to
// represent keeps every message.
func retentionCutoff(now time.Time, keepDays uint64) int64 {
	if keepDays >= maxKeepDays {
		return math.MinInt64
	}
	return now.UnixMilli() - int64(keepDays)*dayMillis
}
