package e2e

import (
	"chat-relay/bus"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testTransportSuite struct {
	BaseSuite
}

func TestTransportSuite(t *testing.T) {
	suite.Run(t, &testTransportSuite{})
}

func (s *testTransportSuite) TestRedisRoundTrip() {
	s.WithTransport("Redis publish then receive", bus.KindRedis, s.Config.RedisURL, s.roundTrip)
}

func (s *testTransportSuite) TestNatsRoundTrip() {
	s.WithTransport("NATS publish then receive", bus.KindNats, s.Config.NatsURL, s.roundTrip)
}

// roundTrip checks ordering and topic isolation on a shared server.
// Topics are unique per run so concurrent runs do not see each other.
func (s *testTransportSuite) roundTrip(ctx context.Context, transport bus.Transport, address string) {
	topic := "room/e2e-" + uuid.NewString()
	other := "room/e2e-" + uuid.NewString()

	sub, err := transport.Connect(ctx, address, topic)
	s.Require().NoError(err)
	defer sub.Close()

	pub, err := transport.Dial(address)
	s.Require().NoError(err)
	defer pub.Close()

	s.Run("Publishing on an unrelated topic reaches nobody", func() {
		s.Require().NoError(pub.Publish(ctx, other, []byte("ignored")))
	})

	s.Run("Messages arrive in publish order", func() {
		for i := range 5 {
			s.Require().NoError(pub.Publish(ctx, topic, []byte(fmt.Sprintf("m%d", i))))
		}
		for i := range 5 {
			select {
			case msg, ok := <-sub.Messages():
				s.Require().True(ok, "stream ended early")
				s.Equal(topic, msg.Topic)
				s.Equal(fmt.Sprintf("m%d", i), string(msg.Payload))
			case <-ctx.Done():
				s.FailNow("timed out waiting for message", "index %d", i)
			}
		}
	})

	s.Run("Close ends the stream", func() {
		sub.Close()
		<-sub.Done()
	})
}
