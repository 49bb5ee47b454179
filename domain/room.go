package domain

import "strings"

const (
	roomTopicPrefix = "room/"

	TopicPresenceOnline  = "presence/online"
	TopicPresenceOffline = "presence/offline"
	TopicPresenceDiag    = "presence/diag"
)

// RoomTopic returns the bus topic carrying the messages of a room.
func RoomTopic(room string) string {
	return roomTopicPrefix + room
}

// RoomFromTopic is the inverse of RoomTopic.
func RoomFromTopic(topic string) (string, bool) {
	if !strings.HasPrefix(topic, roomTopicPrefix) {
		return "", false
	}
	return strings.TrimPrefix(topic, roomTopicPrefix), true
}
