package bus

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
)

const natsClientName = "chat-relay"

// NatsTransport publishes on NATS subjects named after the topic.
// Like Redis, a NATS server is always dialed.
type NatsTransport struct {
	log *slog.Logger
}

func NewNatsTransport(log *slog.Logger) *NatsTransport {
	return &NatsTransport{log: log}
}

func (t *NatsTransport) Bind(address string) (Publisher, error) {
	return t.Dial(address)
}

func (t *NatsTransport) Dial(address string) (Publisher, error) {
	nc, err := nats.Connect(address, nats.Name(natsClientName))
	if err != nil {
		return nil, transportErr("dial", address, err)
	}
	return &natsPublisher{conn: nc}, nil
}

func (t *NatsTransport) Connect(ctx context.Context, address, topic string) (*Subscription, error) {
	lost := make(chan struct{})
	nc, err := nats.Connect(address,
		nats.Name(natsClientName),
		nats.ClosedHandler(func(*nats.Conn) { close(lost) }),
	)
	if err != nil {
		return nil, transportErr("connect", address, err)
	}
	incoming := make(chan *nats.Msg, lagBufferSize)
	subscription, err := nc.ChanSubscribe(topic, incoming)
	if err != nil {
		nc.Close()
		return nil, transportErr("subscribe", address, err)
	}
	// Flush makes sure the server registered the interest before we return
	if err = nc.Flush(); err != nil {
		nc.Close()
		return nil, transportErr("subscribe", address, err)
	}

	out := make(chan Message, queueSize)
	stop := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case <-lost:
				select {
				case <-stop:
				default:
					t.log.Warn("NATS connection closed", "topic", topic)
				}
				return
			case msg := <-incoming:
				select {
				case out <- Message{Topic: msg.Subject, Payload: msg.Data}:
				case <-stop:
					return
				}
			}
		}
	}()
	return newSubscription(ctx, out, func() {
		close(stop)
		_ = subscription.Unsubscribe()
		nc.Close()
	}), nil
}

type natsPublisher struct {
	conn *nats.Conn
}

func (p *natsPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.conn.Publish(topic, payload); err != nil {
		return transportErr("publish", topic, err)
	}
	return nil
}

func (p *natsPublisher) Close() error {
	p.conn.Close()
	return nil
}
