package repositories

import (
	apperrors "chat-relay/errors"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	dbDirName          = "db"
	maxConflictRetries = 64
	lockStripes        = 256
)

// Store is the durable, transactional home of messages, room sequences,
// presence, users and counters. Read-modify-write on a single key is
// serialized inside the Store: callers never lock around Store calls.
type Store struct {
	db    *badger.DB
	base  string
	log   *slog.Logger
	now   func() time.Time
	locks *keyLocks
}

// keyLocks is a fixed set of mutexes picked by key hash. Two keys may share
// a stripe, which only costs waiting.
type keyLocks struct {
	seed    maphash.Seed
	stripes [lockStripes]sync.Mutex
}

func (l *keyLocks) lock(key []byte) func() {
	m := &l.stripes[maphash.Bytes(l.seed, key)%lockStripes]
	m.Lock()
	return m.Unlock
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for retention tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open creates base if missing and opens the Badger database under <base>/db.
func Open(base string, log *slog.Logger, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("creating base path %s: %w", base, err)
	}
	path := filepath.Join(base, dbDirName)
	db, err := badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, storageErr("opening badger database "+path, err)
	}
	s := NewStore(db, log, opts...)
	s.base = base
	return s, nil
}

// OpenReadOnly opens an existing store without taking the directory lock,
// so it can be inspected while a server is running.
func OpenReadOnly(base string, log *slog.Logger) (*Store, error) {
	path := filepath.Join(base, dbDirName)
	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, storageErr("opening badger database read-only "+path, err)
	}
	s := NewStore(db, log)
	s.base = base
	return s, nil
}

// NewStore wraps an already opened database. The caller keeps ownership of db.
func NewStore(db *badger.DB, log *slog.Logger, opts ...Option) *Store {
	s := &Store{db: db, log: log, now: time.Now, locks: &keyLocks{seed: maphash.MakeSeed()}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Base is the directory the store was opened from ("" when built with NewStore).
func (s *Store) Base() string {
	return s.base
}

// update runs fn in a read-write transaction and replays it when Badger
// reports a conflict with a concurrent writer. fn must be idempotent.
func (s *Store) update(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		s.log.Debug("Transaction conflict, retrying", "attempt", attempt)
		time.Sleep(conflictBackoff(attempt))
	}
	return err
}

// updateKey is update for transactions whose read-modify-write centres on
// key. Writers of the same key take turns, so they do not conflict with each
// other; conflicts with unrelated transactions are still retried.
func (s *Store) updateKey(key []byte, fn func(txn *badger.Txn) error) error {
	unlock := s.locks.lock(key)
	defer unlock()
	return s.update(fn)
}

// conflictBackoff is a jittered wait growing with attempt, capped at 10ms.
func conflictBackoff(attempt int) time.Duration {
	ceiling := min(time.Duration(attempt+1)*100*time.Microsecond, 10*time.Millisecond)
	return rand.N(ceiling) + time.Microsecond
}

// getU64 reads a little-endian counter. Missing or malformed values read as 0.
func getU64(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var curr uint64
	err = item.Value(func(val []byte) error {
		curr = decodeU64(val)
		return nil
	})
	return curr, err
}

func encodeU64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func decodeU64(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

var errEmptyValue = errors.New("empty value")

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorage, err)
}
