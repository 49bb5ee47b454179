package repositories

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	SnapshotFileName = "db.bak"
	maxPendingWrites = 256
)

// Snapshot writes a full backup of the database to <dest>/db.bak.
// The backup is taken from a Badger read view, so it is consistent even
// with concurrent writers; writes committed after the view are not included.
func (s *Store) Snapshot(dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir %s: %w", dest, err)
	}
	to := filepath.Join(dest, SnapshotFileName)
	f, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("creating snapshot file %s: %w", to, err)
	}
	defer f.Close()

	if _, err = s.db.Backup(f, 0); err != nil {
		return storageErr("backup to "+to, err)
	}
	return f.Sync()
}

// Restore loads a file produced by Snapshot into the database.
func (s *Store) Restore(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening snapshot %s: %w", src, err)
	}
	defer f.Close()

	if err = s.db.Load(f, maxPendingWrites); err != nil {
		return storageErr("restore from "+src, err)
	}
	return nil
}
