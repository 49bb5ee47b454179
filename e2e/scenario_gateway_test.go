package e2e

import (
	"bytes"
	"chat-relay/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type testGatewaySuite struct {
	BaseSuite
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, &testGatewaySuite{})
}

type frame struct {
	Type   string          `json:"type"`
	UserID string          `json:"user_id"`
	Room   string          `json:"room"`
	ID     string          `json:"id"`
	Seq    uint64          `json:"seq"`
	Body   json.RawMessage `json:"body"`
	Error  string          `json:"error"`
}

func (s *testGatewaySuite) SetupTest() {
	if s.Config.GatewayAddr == "" {
		s.T().Skip("GATEWAY_ADDR is not set")
	}
}

func (s *testGatewaySuite) TestChatFlow() {
	room := "e2e-" + uuid.NewString()
	user := "bob-" + uuid.NewString()[:8]
	var conn *websocket.Conn

	s.Run("Step 1: Connect and receive the welcome frame", func() {
		s.Step("Connect " + user + " to " + room)
		u := url.URL{Scheme: "ws", Host: s.Config.GatewayAddr, Path: "/ws",
			RawQuery: url.Values{"room": {room}, "user": {user}}.Encode()}
		var err error
		conn, _, err = websocket.DefaultDialer.Dial(u.String(), nil)
		s.Require().NoError(err)

		welcome := s.read(conn)
		s.Equal("welcome", welcome.Type)
		s.Equal(user, welcome.UserID)
		s.Equal(room, welcome.Room)
	})
	s.Require().NotNil(conn)
	defer conn.Close()

	s.Run("Step 2: The user shows up online", func() {
		s.Step("GET /presence/" + user)
		var presence struct {
			Online bool `json:"online"`
		}
		s.getJSON("/presence/"+user, &presence)
		s.True(presence.Online)
	})

	s.Run("Step 3: A text frame comes back as a room record", func() {
		s.Step("Send over the socket")
		s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("hello")))
		got := s.read(conn)
		s.Equal(room, got.Room)
		s.JSONEq(`{"text":"hello"}`, string(got.Body))
	})

	s.Run("Step 4: An HTTP post is broadcast and kept in history", func() {
		s.Step("POST /rooms/" + room + "/messages")
		resp, err := http.Post(s.url("/rooms/"+room+"/messages"), "application/json",
			bytes.NewBufferString(`{"text":"from http"}`))
		s.Require().NoError(err)
		resp.Body.Close()
		s.Equal(http.StatusCreated, resp.StatusCode)

		got := s.read(conn)
		s.JSONEq(`{"text":"from http"}`, string(got.Body))

		var history []domain.MessageRecord
		s.getJSON("/rooms/"+room+"/history", &history)
		s.Require().Len(history, 2)
		s.Less(history[0].Seq, history[1].Seq)
	})

	s.Run("Step 5: Leaving marks the user offline", func() {
		s.Step("Close socket")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.Eventually(func() bool {
			var presence struct {
				Online bool `json:"online"`
			}
			s.getJSON("/presence/"+user, &presence)
			return !presence.Online
		}, 5*time.Second, 100*time.Millisecond)
	})
}

func (s *testGatewaySuite) read(conn *websocket.Conn) frame {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	s.Require().NoError(err)
	if s.Config.DebugJSON {
		s.T().Log(string(data))
	}
	var f frame
	s.Require().NoError(json.Unmarshal(data, &f))
	return f
}

func (s *testGatewaySuite) url(path string) string {
	return fmt.Sprintf("http://%s%s", s.Config.GatewayAddr, path)
}

func (s *testGatewaySuite) getJSON(path string, out any) {
	resp, err := http.Get(s.url(path))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}
