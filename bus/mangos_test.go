package bus

import (
	apperrors "chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func inprocAddress() string {
	return fmt.Sprintf("inproc://chat-relay-%s", uuid.NewString())
}

// publishUntilReceived retries since a SUB socket may still be attaching
// when the first frames go out.
func publishUntilReceived(t *testing.T, pub Publisher, sub *Subscription, topic string, payload []byte) Message {
	t.Helper()
	ctx := context.Background()
	deadline := time.After(3 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		require.NoError(t, pub.Publish(ctx, topic, payload))
		select {
		case msg, ok := <-sub.Messages():
			require.True(t, ok)
			return msg
		case <-ticker.C:
		case <-deadline:
			t.Fatal("no message received over mangos")
		}
	}
}

func Test_Mangos_Bind_Then_Connect(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())
	address := inprocAddress()

	// Given a bound publisher and a connected subscriber
	pub, err := transport.Bind(address)
	req.NoError(err)
	defer pub.Close()
	sub, err := transport.Connect(context.Background(), address, "room/general")
	req.NoError(err)
	defer sub.Close()

	// When publishing
	msg := publishUntilReceived(t, pub, sub, "room/general", []byte(`{"text":"hi"}`))

	// Then topic and payload arrive intact
	req.Equal("room/general", msg.Topic)
	req.Equal(`{"text":"hi"}`, string(msg.Payload))
}

func Test_Mangos_Drops_Topics_Sharing_A_Prefix(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())
	address := inprocAddress()

	pub, err := transport.Bind(address)
	req.NoError(err)
	defer pub.Close()
	sub, err := transport.Connect(context.Background(), address, "room/a")
	req.NoError(err)
	defer sub.Close()

	// Wait until the link is up
	publishUntilReceived(t, pub, sub, "room/a", []byte("warmup"))
	// Drain retries of the warmup
	time.Sleep(50 * time.Millisecond)
	for len(sub.Messages()) > 0 {
		<-sub.Messages()
	}

	req.NoError(pub.Publish(context.Background(), "room/ab", []byte("wrong")))
	req.NoError(pub.Publish(context.Background(), "room/a", []byte("right")))

	select {
	case msg := <-sub.Messages():
		req.Equal("room/a", msg.Topic)
		req.Equal("right", string(msg.Payload))
	case <-time.After(2 * time.Second):
		req.Fail("no message received")
	}
}

func Test_Mangos_Publish_Without_Subscribers_Succeeds(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())

	pub, err := transport.Bind(inprocAddress())
	req.NoError(err)
	defer pub.Close()

	req.NoError(pub.Publish(context.Background(), "room/general", []byte("x")))
}

func Test_Mangos_Publish_After_Close(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())

	pub, err := transport.Bind(inprocAddress())
	req.NoError(err)
	req.NoError(pub.Close())

	req.ErrorIs(pub.Publish(context.Background(), "room/general", nil), apperrors.ErrClosed)
}

func Test_Mangos_Bad_Address(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())

	_, err := transport.Bind("nope://nowhere")
	req.ErrorIs(err, apperrors.ErrTransport)

	_, err = transport.Connect(context.Background(), "nope://nowhere", "room/general")
	req.ErrorIs(err, apperrors.ErrTransport)
}

func Test_Mangos_Close_Ends_Stream(t *testing.T) {
	req := require.New(t)
	transport := NewMangosTransport(slog.Default())
	address := inprocAddress()

	pub, err := transport.Bind(address)
	req.NoError(err)
	defer pub.Close()
	sub, err := transport.Connect(context.Background(), address, "room/general")
	req.NoError(err)

	sub.Close()

	req.Eventually(func() bool {
		select {
		case _, ok := <-sub.Messages():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
