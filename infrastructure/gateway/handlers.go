package gateway

import (
	"chat-relay/errors"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	userHeader   = "X-User-ID"
	anonymousKey = "anon"
)

type presenceResponse struct {
	UserID   string `json:"user_id"`
	Online   bool   `json:"online"`
	LastSeen int64  `json:"last_seen,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.JSON(w, http.StatusOK, s.deps.Monitor.GetLatest())
}

// handleHistory serves GET /rooms/{room}/history?after_ts=&limit=.
// Without after_ts the most recent messages are returned, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")
	query := r.URL.Query()

	limit := s.deps.HistoryLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	var afterTs *int64
	if raw := query.Get("after_ts"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.Error(w, http.StatusBadRequest, "after_ts must be an integer")
			return
		}
		afterTs = &parsed
	}

	records, err := s.deps.Rooms.FetchHistory(room, afterTs, limit)
	if err != nil {
		s.log.Error("History read failed", "room", room, "error", err)
		s.Error(w, errors.MapToHTTPStatus(err), "history unavailable")
		return
	}
	s.JSON(w, http.StatusOK, records)
}

// handlePostMessage serves POST /rooms/{room}/messages. The body is stored
// as is, it only has to be JSON.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	room := chi.URLParam(r, "room")
	key := r.Header.Get(userHeader)
	if key == "" {
		key = anonymousKey
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.Error(w, http.StatusRequestEntityTooLarge, "body too large")
		return
	}
	if !json.Valid(body) {
		s.Error(w, http.StatusBadRequest, "body must be JSON")
		return
	}

	if !s.allow(key, "http") {
		s.Error(w, errors.MapToHTTPStatus(errors.ErrRateLimited), errors.ErrRateLimited.Error())
		return
	}

	rec, err := s.deps.Rooms.SendMessage(r.Context(), room, body)
	if err != nil {
		s.log.Error("Send failed", "room", room, "error", err)
		s.Error(w, errors.MapToHTTPStatus(err), err.Error())
		return
	}
	s.JSON(w, http.StatusCreated, rec)
}

func (s *Server) handleOnline(w http.ResponseWriter, _ *http.Request) {
	entries, err := s.deps.Presence.Online()
	if err != nil {
		s.Error(w, errors.MapToHTTPStatus(err), "presence unavailable")
		return
	}
	s.JSON(w, http.StatusOK, entries)
}

func (s *Server) handlePresence(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user")
	lastSeen, online, err := s.deps.Presence.GetPresence(userID)
	if err != nil {
		s.Error(w, errors.MapToHTTPStatus(err), "presence unavailable")
		return
	}
	s.JSON(w, http.StatusOK, presenceResponse{UserID: userID, Online: online, LastSeen: lastSeen})
}

func (s *Server) handleClearRate(w http.ResponseWriter, _ *http.Request) {
	s.deps.Limiter.ClearBuckets()
	s.log.Info("Rate limit buckets cleared")
	w.WriteHeader(http.StatusNoContent)
}

// allow consults the limiter and, on success, bumps the audit counter of key.
// A counter failure is logged only.
func (s *Server) allow(key, endpoint string) bool {
	if !s.deps.Limiter.Allow(key) {
		s.deps.Monitor.IncrRateLimited(endpoint)
		return false
	}
	if _, err := s.deps.Counters.IncrRateCounter(key, 1); err != nil {
		s.log.Warn("Rate counter not updated", "key", key, "error", err)
	}
	return true
}
