package bus

import (
	apperrors "chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type Kind string

const (
	KindMemory Kind = "memory"
	KindMangos Kind = "mangos"
	KindRedis  Kind = "redis"
	KindNats   Kind = "nats"
)

// Message is what a subscriber receives: the topic it was published on and
// the payload bytes, untouched.
type Message struct {
	Topic   string
	Payload []byte
}

// Publisher is the sending side of a transport.
// Publishing to a topic nobody listens to is not an error.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}

// Transport creates publishers and subscriptions for one kind of bus.
// Bind listens on address, Dial connects to it. Transports that have no
// listener concept treat both the same way.
type Transport interface {
	Bind(address string) (Publisher, error)
	Dial(address string) (Publisher, error)
	Connect(ctx context.Context, address, topic string) (*Subscription, error)
}

// New returns the transport matching kind. The memory transport gets its own
// Broker, so two calls never share topics.
func New(kind Kind, log *slog.Logger) (Transport, error) {
	switch kind {
	case KindMemory:
		return NewMemoryTransport(NewBroker(log)), nil
	case KindMangos:
		return NewMangosTransport(log), nil
	case KindRedis:
		return NewRedisTransport(log), nil
	case KindNats:
		return NewNatsTransport(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownBus, kind)
	}
}

// Subscription is a live stream of messages on a single topic.
// Messages is closed when the stream ends, either because Close was called,
// the context given to Connect was cancelled, or the transport failed.
type Subscription struct {
	messages <-chan Message
	done     chan struct{}
	once     sync.Once
	release  func()
}

func newSubscription(ctx context.Context, messages <-chan Message, release func()) *Subscription {
	s := &Subscription{messages: messages, done: make(chan struct{}), release: release}
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
	return s
}

func (s *Subscription) Messages() <-chan Message { return s.messages }

// Done is closed once Close has run.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Close stops the stream. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		if s.release != nil {
			s.release()
		}
	})
}

func transportErr(op, address string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrTransport, op, address, err)
}
