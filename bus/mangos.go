package bus

import (
	apperrors "chat-relay/errors"
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pub"
	"go.nanomsg.org/mangos/v3/protocol/sub"
	_ "go.nanomsg.org/mangos/v3/transport/all"
)

// MangosTransport speaks the nanomsg PUB/SUB protocol (tcp://, ipc://,
// inproc://). Socket calls block, so every socket is owned by one goroutine
// pinned to its OS thread and the rest of the code talks to it over channels.
type MangosTransport struct {
	log *slog.Logger
}

func NewMangosTransport(log *slog.Logger) *MangosTransport {
	return &MangosTransport{log: log}
}

func (t *MangosTransport) Bind(address string) (Publisher, error) {
	return t.publisher("bind", address, func(sock mangos.Socket) error { return sock.Listen(address) })
}

func (t *MangosTransport) Dial(address string) (Publisher, error) {
	return t.publisher("dial", address, func(sock mangos.Socket) error { return sock.Dial(address) })
}

func (t *MangosTransport) publisher(op, address string, attach func(mangos.Socket) error) (Publisher, error) {
	sock, err := pub.NewSocket()
	if err != nil {
		return nil, transportErr(op, address, err)
	}
	if err = attach(sock); err != nil {
		_ = sock.Close()
		return nil, transportErr(op, address, err)
	}
	p := &mangosPublisher{
		sock:     sock,
		requests: make(chan sendRequest),
		done:     make(chan struct{}),
	}
	go p.serve()
	t.log.Debug("Mangos publisher ready", "op", op, "address", address)
	return p, nil
}

func (t *MangosTransport) Connect(ctx context.Context, address, topic string) (*Subscription, error) {
	sock, err := sub.NewSocket()
	if err != nil {
		return nil, transportErr("connect", address, err)
	}
	if err = sock.SetOption(mangos.OptionSubscribe, []byte(topic)); err != nil {
		_ = sock.Close()
		return nil, transportErr("connect", address, err)
	}
	if err = sock.Dial(address); err != nil {
		_ = sock.Close()
		return nil, transportErr("connect", address, err)
	}

	out := make(chan Message, queueSize)
	stop := make(chan struct{})
	go t.receive(sock, topic, out, stop)
	return newSubscription(ctx, out, func() {
		close(stop)
		_ = sock.Close()
	}), nil
}

func (t *MangosTransport) receive(sock mangos.Socket, topic string, out chan<- Message, stop <-chan struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(out)

	for {
		frame, err := sock.Recv()
		if err != nil {
			if !errors.Is(err, mangos.ErrClosed) {
				t.log.Warn("Mangos subscription ended", "topic", topic, "error", err)
			}
			return
		}
		// The socket filters on prefix only
		got, payload := DecodeFrame(frame)
		if got != topic {
			continue
		}
		select {
		case out <- Message{Topic: got, Payload: payload}:
		case <-stop:
			return
		}
	}
}

type sendRequest struct {
	frame  []byte
	result chan error
}

type mangosPublisher struct {
	sock     mangos.Socket
	requests chan sendRequest
	done     chan struct{}
	once     sync.Once
}

func (p *mangosPublisher) serve() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-p.done:
			return
		case req := <-p.requests:
			req.result <- p.sock.Send(req.frame)
		}
	}
}

func (p *mangosPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	req := sendRequest{frame: EncodeFrame(topic, payload), result: make(chan error, 1)}
	select {
	case p.requests <- req:
	case <-p.done:
		return apperrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.result:
		if err != nil {
			return transportErr("publish", topic, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *mangosPublisher) Close() error {
	var err error
	p.once.Do(func() {
		close(p.done)
		err = p.sock.Close()
	})
	return err
}
