package repositories

import "fmt"

// Keyspace (one Badger keyspace, lexicographically sortable):
//   - msg:{room}/{server_ts %020d}/{seq %020d}
//   - seq:{room}
//   - presence:{user_id}
//   - user:{user_id}
//   - rate:{key}
//
// For a fixed room, ascending key order equals ascending (server_ts, seq)
// order as long as server_ts is non-negative. Twenty digits hold any uint64.
const (
	messagePrefix  = "msg:"
	seqPrefix      = "seq:"
	presencePrefix = "presence:"
	userPrefix     = "user:"
	ratePrefix     = "rate:"
)

func messageKey(room string, serverTs int64, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s/%020d/%020d", messagePrefix, room, serverTs, seq))
}

// messageRoomPrefix ends with the separator so "a" never matches "ab".
func messageRoomPrefix(room string) []byte {
	return []byte(messagePrefix + room + "/")
}

func seqKey(room string) []byte {
	return []byte(seqPrefix + room)
}

func presenceKey(userID string) []byte {
	return []byte(presencePrefix + userID)
}

func userKey(userID string) []byte {
	return []byte(userPrefix + userID)
}

func rateKey(key string) []byte {
	return []byte(ratePrefix + key)
}
