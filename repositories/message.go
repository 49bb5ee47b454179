package repositories

import (
	"chat-relay/domain"
	"encoding/json"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
)

// AppendMessage persists a record under its composite key in one transaction.
// It is not idempotent: calling it twice for the same logical message
// with a different seq stores two rows.
func (s *Store) AppendMessage(rec domain.MessageRecord) error {
	bytes, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	key := messageKey(rec.Room, rec.ServerTs, rec.Seq)
	if err = s.update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	}); err != nil {
		return storageErr("append message", err)
	}
	return nil
}

// ScanMessages reads the history of a room in ascending (server_ts, seq) order.
//   - afterTs set: up to limit records with server_ts > *afterTs, oldest first.
//   - afterTs nil: the limit most recent records, still returned oldest first.
//
// Rows that fail to decode, or whose room differs from the requested one,
// are skipped. An unknown room yields an empty slice.
func (s *Store) ScanMessages(room string, afterTs *int64, limit int) ([]domain.MessageRecord, error) {
	out := make([]domain.MessageRecord, 0)
	if limit <= 0 {
		return out, nil
	}
	if afterTs != nil && *afterTs == math.MaxInt64 {
		return out, nil
	}
	prefix := messageRoomPrefix(room)

	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix

		var seekKey []byte
		switch afterTs {
		case nil:
			// Latest first: start past the last possible key of the room and walk back
			options.Reverse = true
			seekKey = append(slices.Clone(prefix), 0xFF)
		default:
			seekKey = messageKey(room, *afterTs+1, 0)
		}

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			rec, ok, err := s.decodeMessage(it.Item())
			if err != nil {
				return err
			}
			if !ok || rec.Room != room {
				continue
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("scan messages", err)
	}

	if afterTs == nil {
		slices.Reverse(out)
	}
	return out, nil
}

// decodeMessage returns ok=false for empty or malformed values.
func (s *Store) decodeMessage(item *badger.Item) (domain.MessageRecord, bool, error) {
	var rec domain.MessageRecord
	var decodeErr error
	err := item.Value(func(val []byte) error {
		if len(val) == 0 {
			decodeErr = errEmptyValue
			return nil
		}
		decodeErr = json.Unmarshal(val, &rec)
		return nil
	})
	if err != nil {
		return rec, false, err
	}
	if decodeErr != nil {
		s.log.Debug("Skipping unreadable message row", "key", string(item.Key()), "err", decodeErr)
		return rec, false, nil
	}
	return rec, true, nil
}
