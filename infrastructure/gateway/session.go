package gateway

import (
	"chat-relay/bus"
	"chat-relay/domain"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	outboundSize   = 64
)

// Control frames sent by the server next to forwarded room records.
type welcomeFrame struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	Room   string `json:"room"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type textBody struct {
	Text string `json:"text"`
}

// session is one WebSocket peer in one room.
// Only writeLoop writes to conn.
type session struct {
	log      *slog.Logger
	conn     *websocket.Conn
	room     string
	userID   string
	outbound chan []byte
}

// handleWebSocket serves GET /ws?room=&user=.
// The peer is marked online, subscribed to the room and every text frame it
// sends becomes a room message. Leaving marks it offline.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	room := lo.CoalesceOrEmpty(r.URL.Query().Get("room"), s.deps.DefaultRoom)
	user := r.URL.Query().Get("user")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	userID, err := s.deps.Presence.Heartbeat(ctx, &user)
	if err != nil {
		s.log.Error("Heartbeat failed on connect", "error", err)
		closeWith(conn, websocket.CloseInternalServerErr, "presence unavailable")
		return
	}
	defer func() {
		if err := s.deps.Presence.MarkOffline(context.WithoutCancel(ctx), userID); err != nil {
			s.log.Warn("Cannot mark offline", "user_id", userID, "error", err)
		}
	}()

	sub, err := s.deps.Subscriber.Connect(ctx, s.deps.BusAddress, domain.RoomTopic(room))
	if err != nil {
		s.log.Error("Room subscription failed", "room", room, "error", err)
		closeWith(conn, websocket.CloseInternalServerErr, "room unavailable")
		return
	}
	defer sub.Close()

	s.deps.Monitor.SessionOpened()
	defer s.deps.Monitor.SessionClosed()

	sess := &session{
		log:      s.log.With("user_id", userID, "room", room),
		conn:     conn,
		room:     room,
		userID:   userID,
		outbound: make(chan []byte, outboundSize),
	}
	sess.send(welcomeFrame{Type: "welcome", UserID: userID, Room: room})

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		s.writeLoop(ctx, sess, sub.Messages())
		// Unblock the reader
		_ = conn.Close()
	}()

	s.readLoop(ctx, sess)
	cancel()
	<-writerDone
	sess.log.Debug("Session closed")
}

func (s *Server) readLoop(ctx context.Context, sess *session) {
	sess.conn.SetReadLimit(maxMessageSize)
	_ = sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	sess.conn.SetPongHandler(func(string) error {
		return sess.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("WebSocket read failed", "error", err)
			}
			return
		}
		_ = sess.conn.SetReadDeadline(time.Now().Add(pongWait))
		if kind != websocket.TextMessage {
			continue
		}
		s.handleInbound(ctx, sess, string(data))
	}
}

// handleInbound turns a text frame into a room message. The sender sees its
// own message through the room subscription like everyone else.
func (s *Server) handleInbound(ctx context.Context, sess *session, text string) {
	if !s.allow(sess.userID, "ws") {
		sess.send(errorFrame{Type: "error", Error: "rate_limited"})
		return
	}
	body, err := json.Marshal(textBody{Text: text})
	if err != nil {
		return
	}
	if _, err = s.deps.Rooms.SendMessage(ctx, sess.room, body); err != nil {
		sess.log.Error("Send failed", "error", err)
		sess.send(errorFrame{Type: "error", Error: "send_failed"})
	}
}

func (s *Server) writeLoop(ctx context.Context, sess *session, messages <-chan bus.Message) {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	heartbeat := time.NewTicker(s.deps.HeartbeatEvery)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			closeWith(sess.conn, websocket.CloseNormalClosure, "")
			return
		case msg, ok := <-messages:
			if !ok {
				sess.log.Warn("Room stream ended")
				closeWith(sess.conn, websocket.CloseTryAgainLater, "room stream ended")
				return
			}
			if !sess.write(websocket.TextMessage, msg.Payload) {
				return
			}
		case frame := <-sess.outbound:
			if !sess.write(websocket.TextMessage, frame) {
				return
			}
		case <-ping.C:
			if !sess.write(websocket.PingMessage, nil) {
				return
			}
		case <-heartbeat.C:
			if _, err := s.deps.Presence.Heartbeat(ctx, &sess.userID); err != nil {
				sess.log.Warn("Heartbeat refresh failed", "error", err)
			}
		}
	}
}

// send queues a control frame; it is dropped if the peer is too slow.
func (sess *session) send(frame any) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	select {
	case sess.outbound <- payload:
	default:
		sess.log.Debug("Outbound frame dropped")
	}
}

func (sess *session) write(kind int, payload []byte) bool {
	_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := sess.conn.WriteMessage(kind, payload); err != nil {
		sess.log.Debug("WebSocket write failed", "error", err)
		return false
	}
	return true
}

func closeWith(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
}
