//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IPublisher is the sending side of the bus as seen by the services.
type IPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type IMessageStore interface {
	NextSeqForRoom(room string) (uint64, error)
	AppendMessage(rec domain.MessageRecord) error
	ScanMessages(room string, afterTs *int64, limit int) ([]domain.MessageRecord, error)
}

type IPresenceStore interface {
	SetPresence(userID string, online bool, ts int64) error
	GetPresence(userID string) (int64, bool, error)
	ListPresence() ([]domain.PresenceEntry, error)
	RemovePresenceIfStale(userID string, lastSeen int64) (bool, error)
}

type ICounterStore interface {
	IncrRateCounter(key string, delta uint64) (uint64, error)
}

type IRateLimiter interface {
	Allow(key string) bool
	ClearBuckets()
}

// IMonitor receives live activity for the stats view and the metrics.
type IMonitor interface {
	RecordMessage(id, room string)
	IncrPublishFailure(kind string)
	IncrPresenceTransition(status string)
	IncrPresenceSweepError()
}

// ISweeper runs one presence sweep and returns how many users went offline.
type ISweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type IRetentionStore interface {
	RetentionSweep(keepDays uint64) (int, error)
}

type ISnapshotStore interface {
	Snapshot(dest string) error
}
