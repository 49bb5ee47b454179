package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// PutUser stores an opaque JSON user document. Last write wins.
func (s *Store) PutUser(userID string, user json.RawMessage) error {
	if !json.Valid(user) {
		return fmt.Errorf("user %s: invalid json document", userID)
	}
	if err := s.update(func(txn *badger.Txn) error {
		return txn.Set(userKey(userID), user)
	}); err != nil {
		return storageErr("put user", err)
	}
	return nil
}

// GetUser retrieves a user document, false when absent.
func (s *Store) GetUser(userID string) (json.RawMessage, bool, error) {
	var user json.RawMessage
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(userID))
		if err != nil {
			return err
		}
		user, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr("get user", err)
	}
	return user, true, nil
}

// ListUsers returns every stored user document. Invalid documents are skipped.
func (s *Store) ListUsers() ([]json.RawMessage, error) {
	users := make([]json.RawMessage, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(userPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			if len(val) == 0 || !json.Valid(val) {
				continue
			}
			users = append(users, val)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

// DeleteUser removes a user document. Deleting an unknown user is not an error.
func (s *Store) DeleteUser(userID string) error {
	if err := s.update(func(txn *badger.Txn) error {
		return txn.Delete(userKey(userID))
	}); err != nil {
		return storageErr("delete user", err)
	}
	return nil
}
