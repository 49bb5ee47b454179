package repositories

import (
	"chat-relay/domain"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// IncrRateCounter adds delta to a persisted counter and returns the new value.
// These counters are for auditing; enforcement lives in the in-memory limiter.
func (s *Store) IncrRateCounter(key string, delta uint64) (uint64, error) {
	var next uint64
	err := s.updateKey(rateKey(key), func(txn *badger.Txn) error {
		curr, err := getU64(txn, rateKey(key))
		if err != nil {
			return err
		}
		next = curr + delta
		return txn.Set(rateKey(key), encodeU64(next))
	})
	if err != nil {
		return 0, storageErr("incr rate counter", err)
	}
	return next, nil
}

// GetRateCounter reads a counter, 0 for an unseen key.
func (s *Store) GetRateCounter(key string) (uint64, error) {
	var value uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		value, err = getU64(txn, rateKey(key))
		return err
	})
	if err != nil {
		return 0, storageErr("get rate counter", err)
	}
	return value, nil
}

func (s *Store) ListRateCounters() ([]domain.Counter, error) {
	counters := make([]domain.Counter, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(ratePrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := strings.TrimPrefix(string(item.Key()), ratePrefix)
			err := item.Value(func(val []byte) error {
				if len(val) == 8 {
					counters = append(counters, domain.Counter{Key: key, Value: decodeU64(val)})
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
		return nil, storageErr("list rate counters", err)
	}
	return counters, nil
}

func (s *Store) ResetRateCounter(key string) error {
	if err := s.updateKey(rateKey(key), func(txn *badger.Txn) error {
		return txn.Set(rateKey(key), encodeU64(0))
	}); err != nil {
		return storageErr("reset rate counter", err)
	}
	return nil
}
