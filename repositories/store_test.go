package repositories

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), slog.Default(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func Test_Counter_Unseen_Key_Is_Zero(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	value, err := store.GetRateCounter("nobody")
	req.NoError(err)
	req.Zero(value)
}

func Test_Counter_Increment_List_And_Reset(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	// Given two counters incremented several times
	for i := 0; i < 3; i++ {
		_, err := store.IncrRateCounter("alice", 1)
		req.NoError(err)
	}
	value, err := store.IncrRateCounter("bob", 10)
	req.NoError(err)
	req.Equal(uint64(10), value)

	// Then both are readable
	value, err = store.GetRateCounter("alice")
	req.NoError(err)
	req.Equal(uint64(3), value)

	counters, err := store.ListRateCounters()
	req.NoError(err)
	req.Len(counters, 2)

	// When one is reset
	req.NoError(store.ResetRateCounter("alice"))

	// Then it reads zero again
	value, err = store.GetRateCounter("alice")
	req.NoError(err)
	req.Zero(value)
}

func Test_User_Put_Get_List_Delete(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	req.NoError(store.PutUser("u1", []byte(`{"id":"u1","name":"alice"}`)))
	req.NoError(store.PutUser("u2", []byte(`{"id":"u2","name":"bob"}`)))
	// Last write wins
	req.NoError(store.PutUser("u1", []byte(`{"id":"u1","name":"alice2"}`)))

	user, found, err := store.GetUser("u1")
	req.NoError(err)
	req.True(found)
	req.JSONEq(`{"id":"u1","name":"alice2"}`, string(user))

	users, err := store.ListUsers()
	req.NoError(err)
	req.Len(users, 2)

	req.NoError(store.DeleteUser("u1"))
	_, found, err = store.GetUser("u1")
	req.NoError(err)
	req.False(found)

	// Deleting twice is fine
	req.NoError(store.DeleteUser("u1"))
}

func Test_User_Rejects_Invalid_Json(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)

	req.Error(store.PutUser("u1", []byte(`{not json`)))
}
