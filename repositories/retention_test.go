package repositories

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func Test_Retention_Keeps_Recent_Messages(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(fixedClock(now)))

	// Given one message two days old and one an hour old
	appendText(t, store, "general", now.Add(-48*time.Hour).UnixMilli(), "old")
	appendText(t, store, "general", now.Add(-time.Hour).UnixMilli(), "fresh")

	// When keeping one day
	deleted, err := store.RetentionSweep(1)

	// Then only the old one is gone
	req.NoError(err)
	req.Equal(1, deleted)
	records, err := store.ScanMessages("general", nil, 10)
	req.NoError(err)
	req.Equal([]string{"fresh"}, texts(t, records))
}

func Test_Retention_Huge_Horizon_Keeps_Everything(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(fixedClock(now)))

	// Given messages from a year ago and from today
	appendText(t, store, "general", now.AddDate(-1, 0, 0).UnixMilli(), "old")
	appendText(t, store, "general", now.Add(-time.Minute).UnixMilli(), "fresh")

	// When the horizon overflows int64 milliseconds
	for _, keepDays := range []uint64{maxKeepDays, maxKeepDays + 1, math.MaxUint64} {
		deleted, err := store.RetentionSweep(keepDays)

		// Then nothing is deleted
		req.NoError(err)
		req.Zero(deleted, "keep days %d", keepDays)
	}
	records, err := store.ScanMessages("general", nil, 10)
	req.NoError(err)
	req.Equal([]string{"old", "fresh"}, texts(t, records))
}

func Test_Retention_Zero_Days_Removes_Everything_And_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(fixedClock(now)))

	for i := 1; i <= 5; i++ {
		appendText(t, store, "general", now.Add(-time.Duration(i)*time.Minute).UnixMilli(), "m")
		appendText(t, store, "random", now.Add(-time.Duration(i)*time.Second).UnixMilli(), "m")
	}

	deleted, err := store.RetentionSweep(0)
	req.NoError(err)
	req.Equal(10, deleted)

	for _, room := range []string{"general", "random"} {
		records, err := store.ScanMessages(room, nil, 10)
		req.NoError(err)
		req.Empty(records)
	}

	// A second run finds nothing left
	deleted, err = store.RetentionSweep(0)
	req.NoError(err)
	req.Zero(deleted)
}

func Test_Retention_Removes_Malformed_Rows(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(fixedClock(now)))

	appendText(t, store, "general", now.UnixMilli(), "ok")
	req.NoError(store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey("general", now.UnixMilli(), 77), []byte("not json"))
	}))

	deleted, err := store.RetentionSweep(30)
	req.NoError(err)
	req.Equal(1, deleted)

	records, err := store.ScanMessages("general", nil, 10)
	req.NoError(err)
	req.Equal([]string{"ok"}, texts(t, records))
}

func Test_Retention_Leaves_Sequences_Alone(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(fixedClock(now)))

	appendText(t, store, "general", now.Add(-72*time.Hour).UnixMilli(), "old")
	_, err := store.RetentionSweep(0)
	req.NoError(err)

	// Sequence numbers keep growing after a purge
	next, err := store.NextSeqForRoom("general")
	req.NoError(err)
	req.Equal(uint64(2), next)
}

func Test_Snapshot_Then_Restore_Into_Fresh_Store(t *testing.T) {
	req := require.New(t)
	source := newTestStore(t)

	// Given a store with messages, presence and users
	appendText(t, source, "general", 100, "a")
	appendText(t, source, "general", 200, "b")
	req.NoError(source.SetPresence("alice", true, 1_700_000_000))
	req.NoError(source.PutUser("u1", []byte(`{"id":"u1"}`)))

	// When snapshotting it
	dest := t.TempDir()
	req.NoError(source.Snapshot(dest))
	req.FileExists(filepath.Join(dest, SnapshotFileName))

	// And restoring the file into an empty store
	target := newTestStore(t)
	req.NoError(target.Restore(filepath.Join(dest, SnapshotFileName)))

	// Then the data is all there
	records, err := target.ScanMessages("general", nil, 10)
	req.NoError(err)
	req.Equal([]string{"a", "b"}, texts(t, records))

	lastSeen, online, err := target.GetPresence("alice")
	req.NoError(err)
	req.True(online)
	req.Equal(int64(1_700_000_000), lastSeen)

	_, found, err := target.GetUser("u1")
	req.NoError(err)
	req.True(found)

	seq, err := target.CurrentSeqForRoom("general")
	req.NoError(err)
	req.Equal(uint64(2), seq)
}

func Test_Restore_Missing_File(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	req.Error(store.Restore(filepath.Join(t.TempDir(), "nope.bak")))
}
