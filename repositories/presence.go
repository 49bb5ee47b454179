package repositories

import (
	"chat-relay/domain"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

type presenceValue struct {
	LastSeen int64 `json:"last_seen"`
}

// SetPresence stores last_seen for an online user, or removes the row when offline.
func (s *Store) SetPresence(userID string, online bool, ts int64) error {
	var bytes []byte
	if online {
		var err error
		if bytes, err = json.Marshal(presenceValue{LastSeen: ts}); err != nil {
			return err
		}
	}
	if err := s.updateKey(presenceKey(userID), func(txn *badger.Txn) error {
		if !online {
			return txn.Delete(presenceKey(userID))
		}
		return txn.Set(presenceKey(userID), bytes)
	}); err != nil {
		return storageErr("set presence", err)
	}
	return nil
}

// GetPresence returns last_seen and true when the user is online.
func (s *Store) GetPresence(userID string) (int64, bool, error) {
	var lastSeen int64
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(presenceKey(userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			lastSeen, found = decodePresence(val)
			return nil
		})
	})
	if err != nil {
		return 0, false, storageErr("get presence", err)
	}
	return lastSeen, found, nil
}

// ListPresence returns every online user. Unreadable rows are skipped.
func (s *Store) ListPresence() ([]domain.PresenceEntry, error) {
	entries := make([]domain.PresenceEntry, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(presencePrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			userID := strings.TrimPrefix(string(item.Key()), presencePrefix)
			err := item.Value(func(val []byte) error {
				if lastSeen, ok := decodePresence(val); ok {
					entries = append(entries, domain.PresenceEntry{UserID: userID, LastSeen: lastSeen})
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("list presence", err)
	}
	return entries, nil
}

// RemovePresenceIfStale deletes the row only if it still holds lastSeen.
// A heartbeat that refreshed the user after it was listed as stale wins.
func (s *Store) RemovePresenceIfStale(userID string, lastSeen int64) (bool, error) {
	var removed bool
	err := s.updateKey(presenceKey(userID), func(txn *badger.Txn) error {
		removed = false
		item, err := txn.Get(presenceKey(userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var current int64
		var ok bool
		if err = item.Value(func(val []byte) error {
			current, ok = decodePresence(val)
			return nil
		}); err != nil {
			return err
		}
		if ok && current != lastSeen {
			return nil
		}
		removed = true
		return txn.Delete(presenceKey(userID))
	})
	if err != nil {
		return false, storageErr("remove stale presence", err)
	}
	return removed, nil
}

func decodePresence(val []byte) (int64, bool) {
	if len(val) == 0 {
		return 0, false
	}
	var p presenceValue
	if err := json.Unmarshal(val, &p); err != nil {
		return 0, false
	}
	return p.LastSeen, true
}
