// Package domain contains core concepts of the chat system.
// This file defines the persisted message record.
// Records are immutable once stored.
package domain

import (
	"encoding/json"
	"fmt"
)

// MessageRecord is a room message as stored and broadcast.
// Body is opaque structured data, never inspected by the core.
type MessageRecord struct {
	ID       string          `json:"id"`
	Seq      uint64          `json:"seq"`
	Room     string          `json:"room"`
	ServerTs int64           `json:"server_ts"`
	Body     json.RawMessage `json:"body"`
}

// NewMessageID derives the record id from its server timestamp and sequence.
func NewMessageID(serverTs int64, seq uint64) string {
	return fmt.Sprintf("%d-%d", serverTs, seq)
}

// Counter is a named monotonic counter read back from storage.
type Counter struct {
	Key   string
	Value uint64
}
