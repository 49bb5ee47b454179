package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

type IRoomService interface {
	SendMessage(ctx context.Context, room string, body json.RawMessage) (domain.MessageRecord, error)
	FetchHistory(room string, afterTs *int64, limit int) ([]domain.MessageRecord, error)
}

// RoomService orders, persists and broadcasts room messages.
// The store is the source of truth: nothing is published before it is
// written, and a failed publish does not undo the write.
type RoomService struct {
	log       *slog.Logger
	store     contract.IMessageStore
	publisher contract.IPublisher
	monitor   contract.IMonitor
	now       func() time.Time
}

func NewRoomService(log *slog.Logger, store contract.IMessageStore, publisher contract.IPublisher, monitor contract.IMonitor) *RoomService {
	return &RoomService{log: log, store: store, publisher: publisher, monitor: monitor, now: time.Now}
}

func (s *RoomService) SendMessage(ctx context.Context, room string, body json.RawMessage) (domain.MessageRecord, error) {
	if room == "" {
		return domain.MessageRecord{}, errors.ErrInvalidRoom
	}
	ts := s.now().UnixMilli()
	seq, err := s.store.NextSeqForRoom(room)
	if err != nil {
		return domain.MessageRecord{}, fmt.Errorf("assigning seq in %s: %w", room, err)
	}
	rec := domain.MessageRecord{
		ID:       domain.NewMessageID(ts, seq),
		Seq:      seq,
		Room:     room,
		ServerTs: ts,
		Body:     body,
	}
	if err = s.store.AppendMessage(rec); err != nil {
		return domain.MessageRecord{}, fmt.Errorf("persisting %s: %w", rec.ID, err)
	}
	s.monitor.RecordMessage(rec.ID, room)

	payload, err := json.Marshal(rec)
	if err != nil {
		s.log.Error("Cannot encode message for broadcast", "id", rec.ID, "error", err)
		s.monitor.IncrPublishFailure("room")
		return rec, nil
	}
	if err = s.publisher.Publish(ctx, domain.RoomTopic(room), payload); err != nil {
		s.log.Warn("Message stored but not broadcast", "id", rec.ID, "room", room, "error", err)
		s.monitor.IncrPublishFailure("room")
	}
	return rec, nil
}

func (s *RoomService) FetchHistory(room string, afterTs *int64, limit int) ([]domain.MessageRecord, error) {
	if room == "" {
		return nil, errors.ErrInvalidRoom
	}
	return s.store.ScanMessages(room, afterTs, limit)
}
