package domain

import (
	"fmt"
	"time"
)

// PresenceEntry is one online user. Absence of an entry means offline.
type PresenceEntry struct {
	UserID   string `json:"user_id"`
	LastSeen int64  `json:"last_seen"` // unix seconds
}

// IsStale reports whether the entry has not been refreshed for longer than
// timeout. now is taken at the same whole-second resolution as LastSeen.
func (p PresenceEntry) IsStale(now time.Time, timeout time.Duration) bool {
	idle := time.Duration(now.Unix()-p.LastSeen) * time.Second
	return idle > timeout
}

// PresenceEvent is the payload published on the presence topics.
type PresenceEvent struct {
	UserID   string `json:"user_id"`
	LastSeen int64  `json:"last_seen"`
}

type PresenceStatus string

const (
	ONLINE  PresenceStatus = "online"
	OFFLINE PresenceStatus = "offline"
)

// PresenceDiag is published on TopicPresenceDiag after each transition.
type PresenceDiag struct {
	Event    PresenceStatus `json:"event"`
	UserID   string         `json:"user_id"`
	LastSeen int64          `json:"last_seen"`
}

// GuestID builds the identity given to connections without a resolved user.
func GuestID(suffix string) string {
	return fmt.Sprintf("anon-%s", suffix)
}
