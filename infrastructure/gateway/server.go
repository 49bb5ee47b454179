package gateway

import (
	"chat-relay/bus"
	"chat-relay/contract"
	"chat-relay/observability"
	"chat-relay/services"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxBodySize     = 64 * 1024
	maxHistoryLimit = 1000
)

// Subscriber is the receiving side of the bus.
type Subscriber interface {
	Connect(ctx context.Context, address, topic string) (*bus.Subscription, error)
}

type Dependencies struct {
	Rooms          services.IRoomService
	Presence       services.IPresenceService
	Limiter        contract.IRateLimiter
	Counters       contract.ICounterStore
	Subscriber     Subscriber
	BusAddress     string
	Monitor        *observability.MonitoringManager
	DefaultRoom    string
	HistoryLimit   int
	HeartbeatEvery time.Duration
}

// Server exposes the room services over HTTP and WebSocket.
// It holds no state of its own besides open sockets.
type Server struct {
	log      *slog.Logger
	deps     Dependencies
	upgrader websocket.Upgrader
}

func NewServer(log *slog.Logger, deps Dependencies) *Server {
	if deps.HistoryLimit <= 0 {
		deps.HistoryLimit = 50
	}
	if deps.HeartbeatEvery <= 0 {
		deps.HeartbeatEvery = 10 * time.Second
	}
	return &Server{
		log:  log,
		deps: deps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Origin policy is enforced by the fronting proxy
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(Metrics)
		r.Use(MaxBodySize(maxBodySize))

		r.Get("/stats", s.handleStats)
		r.Get("/rooms/{room}/history", s.handleHistory)
		r.Post("/rooms/{room}/messages", s.handlePostMessage)
		r.Get("/presence", s.handleOnline)
		r.Get("/presence/{user}", s.handlePresence)
		r.Post("/admin/rate/clear", s.handleClearRate)
	})
	return r
}

// JSON sends a JSON response with the given status code.
func (s *Server) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Debug("Cannot write response", "error", err)
	}
}

// Error sends a JSON error response with the given status code.
func (s *Server) Error(w http.ResponseWriter, status int, message string) {
	s.JSON(w, status, map[string]string{"error": message})
}
