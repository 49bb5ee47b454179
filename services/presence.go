package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/runtime/workers"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type IPresenceService interface {
	Heartbeat(ctx context.Context, userID *string) (string, error)
	MarkOffline(ctx context.Context, userID string) error
	GetPresence(userID string) (int64, bool, error)
	Online() ([]domain.PresenceEntry, error)
}

// PresenceService tracks who is online. Every transition is written to the
// store first and then announced on the bus; the sweep turns silent users
// offline once their last heartbeat is older than timeout.
type PresenceService struct {
	log           *slog.Logger
	store         contract.IPresenceStore
	publisher     contract.IPublisher
	monitor       contract.IMonitor
	sweepInterval time.Duration
	timeout       time.Duration
	now           func() time.Time

	mu       sync.Mutex
	started  bool
	stopped  bool
	cancel   context.CancelFunc
	sweepEnd chan struct{}
}

type PresenceOption func(*PresenceService)

func WithPresenceClock(now func() time.Time) PresenceOption {
	return func(s *PresenceService) { s.now = now }
}

func NewPresenceService(log *slog.Logger, store contract.IPresenceStore, publisher contract.IPublisher,
	monitor contract.IMonitor, sweepInterval, timeout time.Duration, opts ...PresenceOption) *PresenceService {
	s := &PresenceService{
		log:           log,
		store:         store,
		publisher:     publisher,
		monitor:       monitor,
		sweepInterval: sweepInterval,
		timeout:       timeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Heartbeat marks the user online and returns its id. A nil or empty id
// gets a fresh guest identity.
func (s *PresenceService) Heartbeat(ctx context.Context, userID *string) (string, error) {
	id := ""
	if userID != nil {
		id = *userID
	}
	if id == "" {
		id = domain.GuestID(uuid.NewString())
	}
	ts := s.now().Unix()
	if err := s.store.SetPresence(id, true, ts); err != nil {
		return "", fmt.Errorf("heartbeat for %s: %w", id, err)
	}
	s.announce(ctx, domain.ONLINE, id, ts)
	return id, nil
}

func (s *PresenceService) MarkOffline(ctx context.Context, userID string) error {
	ts := s.now().Unix()
	if err := s.store.SetPresence(userID, false, ts); err != nil {
		return fmt.Errorf("marking %s offline: %w", userID, err)
	}
	s.announce(ctx, domain.OFFLINE, userID, ts)
	return nil
}

func (s *PresenceService) GetPresence(userID string) (int64, bool, error) {
	return s.store.GetPresence(userID)
}

func (s *PresenceService) Online() ([]domain.PresenceEntry, error) {
	return s.store.ListPresence()
}

// Sweep marks offline every user whose last heartbeat is older than the
// timeout. A failure on one user does not stop the others.
func (s *PresenceService) Sweep(ctx context.Context) (int, error) {
	entries, err := s.store.ListPresence()
	if err != nil {
		s.monitor.IncrPresenceSweepError()
		return 0, err
	}
	now := s.now()

	expired := 0
	for _, entry := range entries {
		if !entry.IsStale(now, s.timeout) {
			continue
		}
		removed, err := s.store.RemovePresenceIfStale(entry.UserID, entry.LastSeen)
		if err != nil {
			s.monitor.IncrPresenceSweepError()
			s.log.Warn("Cannot expire presence", "user_id", entry.UserID, "error", err)
			continue
		}
		if !removed {
			// Heartbeat landed in between
			continue
		}
		expired++
		s.announce(ctx, domain.OFFLINE, entry.UserID, now.Unix())
	}
	return expired, nil
}

// Start launches the background sweep. Calling it again is a no-op.
func (s *PresenceService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return errors.ErrAlreadyShutdown
	}
	if s.started {
		return nil
	}
	s.started = true

	sweepCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.sweepEnd = make(chan struct{})
	sweeper := workers.NewPresenceSweeper(s.log, s, s.sweepInterval)
	go func() {
		defer close(s.sweepEnd)
		if err := sweeper.Run(sweepCtx); err != nil {
			s.log.Error("Presence sweep stopped", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the sweep and waits until it has returned, or until ctx
// expires. Every call waits; only the first one signals.
func (s *PresenceService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	sweepEnd := s.sweepEnd
	s.mu.Unlock()

	if sweepEnd == nil {
		return nil
	}
	select {
	case <-sweepEnd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *PresenceService) announce(ctx context.Context, status domain.PresenceStatus, userID string, ts int64) {
	topic := domain.TopicPresenceOnline
	if status == domain.OFFLINE {
		topic = domain.TopicPresenceOffline
	}
	s.monitor.IncrPresenceTransition(string(status))

	payload, _ := json.Marshal(domain.PresenceEvent{UserID: userID, LastSeen: ts})
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		s.log.Warn("Presence change not broadcast", "user_id", userID, "status", status, "error", err)
		s.monitor.IncrPublishFailure("presence")
		return
	}
	diag, _ := json.Marshal(domain.PresenceDiag{Event: status, UserID: userID, LastSeen: ts})
	if err := s.publisher.Publish(ctx, domain.TopicPresenceDiag, diag); err != nil {
		s.log.Debug("Presence diag not broadcast", "user_id", userID, "error", err)
	}
}
