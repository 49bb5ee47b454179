package repositories

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// NextSeqForRoom increments and returns the sequence of a room in a single
// transaction. The first call for a room returns 1. A value handed out is
// never handed out again, even if the caller later fails to append.
func (s *Store) NextSeqForRoom(room string) (uint64, error) {
	var next uint64
	err := s.updateKey(seqKey(room), func(txn *badger.Txn) error {
		curr, err := getU64(txn, seqKey(room))
		if err != nil {
			return err
		}
		next = curr + 1
		return txn.Set(seqKey(room), encodeU64(next))
	})
	if err != nil {
		return 0, storageErr("next seq for room "+room, err)
	}
	return next, nil
}

// SetSeqForRoom forces the sequence of a room, for migrations and repairs.
func (s *Store) SetSeqForRoom(room string, seq uint64) error {
	if err := s.updateKey(seqKey(room), func(txn *badger.Txn) error {
		return txn.Set(seqKey(room), encodeU64(seq))
	}); err != nil {
		return storageErr("set seq for room "+room, err)
	}
	return nil
}

// CurrentSeqForRoom reads the last value handed out, 0 for an unseen room.
func (s *Store) CurrentSeqForRoom(room string) (uint64, error) {
	var curr uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		curr, err = getU64(txn, seqKey(room))
		return err
	})
	if err != nil {
		return 0, storageErr("current seq for room "+room, err)
	}
	return curr, nil
}

// RoomSeq is the last sequence handed out in a room.
type RoomSeq struct {
	Room string
	Seq  uint64
}

// ListRooms returns every room that was ever given a sequence, by name.
func (s *Store) ListRooms() ([]RoomSeq, error) {
	rooms := make([]RoomSeq, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(seqPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			room := strings.TrimPrefix(string(item.Key()), seqPrefix)
			if err := item.Value(func(val []byte) error {
				rooms = append(rooms, RoomSeq{Room: room, Seq: decodeU64(val)})
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("list rooms", err)
	}
	return rooms, nil
}
