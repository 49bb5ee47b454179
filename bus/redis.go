package bus

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisTransport uses Redis PUBLISH/SUBSCRIBE. The address is a redis:// URL
// and the topic is used as the channel name. Redis has no listener side, so
// Bind and Dial are the same.
type RedisTransport struct {
	log *slog.Logger
}

func NewRedisTransport(log *slog.Logger) *RedisTransport {
	return &RedisTransport{log: log}
}

func (t *RedisTransport) Bind(address string) (Publisher, error) {
	return t.Dial(address)
}

func (t *RedisTransport) Dial(address string) (Publisher, error) {
	client, err := t.client(context.Background(), "dial", address)
	if err != nil {
		return nil, err
	}
	return &redisPublisher{client: client}, nil
}

func (t *RedisTransport) Connect(ctx context.Context, address, topic string) (*Subscription, error) {
	client, err := t.client(ctx, "connect", address)
	if err != nil {
		return nil, err
	}
	pubsub := client.Subscribe(ctx, topic)
	// Receive waits for the subscription confirmation
	if _, err = pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		_ = client.Close()
		return nil, transportErr("subscribe", address, err)
	}

	out := make(chan Message, queueSize)
	stop := make(chan struct{})
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- Message{Topic: msg.Channel, Payload: []byte(msg.Payload)}:
			case <-stop:
				return
			}
		}
	}()
	return newSubscription(ctx, out, func() {
		close(stop)
		_ = pubsub.Close()
		_ = client.Close()
	}), nil
}

func (t *RedisTransport) client(ctx context.Context, op, address string) (*redis.Client, error) {
	opts, err := redis.ParseURL(address)
	if err != nil {
		return nil, transportErr(op, address, err)
	}
	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, transportErr(op, address, err)
	}
	t.log.Debug("Redis connected", "op", op, "address", opts.Addr)
	return client, nil
}

type redisPublisher struct {
	client *redis.Client
}

func (p *redisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := p.client.Publish(ctx, topic, payload).Err(); err != nil {
		return transportErr("publish", topic, err)
	}
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}
