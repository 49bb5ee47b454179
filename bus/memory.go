package bus

import (
	apperrors "chat-relay/errors"
	"context"
	"log/slog"
	"sync"
)

const (
	lagBufferSize = 1024
	queueSize     = 256
)

// Broker is an in-process topic registry. Each Broker is isolated: nothing is
// shared at package level, so tests and multiple servers can run side by side.
type Broker struct {
	log    *slog.Logger
	mu     sync.RWMutex
	hubs   map[string]*hub
	closed bool
}

type hub struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]chan Message
}

func NewBroker(log *slog.Logger) *Broker {
	return &Broker{log: log, hubs: make(map[string]*hub)}
}

// Publish hands the message to every current subscriber of topic without
// blocking. A subscriber whose lag buffer is full misses the message.
func (b *Broker) Publish(_ context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return apperrors.ErrClosed
	}
	h, ok := b.hubs[topic]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	msg := Message{Topic: topic, Payload: payload}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, lag := range h.subs {
		select {
		case lag <- msg:
		default:
			b.log.Debug("Subscriber lagging, message dropped", "topic", topic, "subscriber", id)
		}
	}
	return nil
}

// Close refuses further publishes. Existing subscriptions stay open until
// they are closed by their owners.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Subscribe registers a subscriber on topic. Only messages published after
// Subscribe returns are delivered.
func (b *Broker) Subscribe(ctx context.Context, topic string) *Subscription {
	h := b.hub(topic)

	lag := make(chan Message, lagBufferSize)
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = lag
	h.mu.Unlock()

	out := make(chan Message, queueSize)
	stop := make(chan struct{})
	sub := newSubscription(ctx, out, func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
		close(stop)
	})

	go func() {
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case msg := <-lag:
				select {
				case out <- msg:
				case <-stop:
					return
				}
			}
		}
	}()
	return sub
}

// Subscribers reports how many subscribers topic currently has.
func (b *Broker) Subscribers(topic string) int {
	b.mu.RLock()
	h, ok := b.hubs[topic]
	b.mu.RUnlock()
	if !ok {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (b *Broker) hub(topic string) *hub {
	b.mu.RLock()
	h, ok := b.hubs[topic]
	b.mu.RUnlock()
	if ok {
		return h
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if h, ok = b.hubs[topic]; ok {
		return h
	}
	h = &hub{subs: make(map[uint64]chan Message)}
	b.hubs[topic] = h
	return h
}

// MemoryTransport serves every address from the same Broker.
type MemoryTransport struct {
	broker *Broker
}

func NewMemoryTransport(broker *Broker) *MemoryTransport {
	return &MemoryTransport{broker: broker}
}

func (t *MemoryTransport) Broker() *Broker { return t.broker }

func (t *MemoryTransport) Bind(string) (Publisher, error) { return t.broker, nil }

func (t *MemoryTransport) Dial(string) (Publisher, error) { return t.broker, nil }

func (t *MemoryTransport) Connect(ctx context.Context, _ string, topic string) (*Subscription, error) {
	return t.broker.Subscribe(ctx, topic), nil
}
