package ozpocket

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// SnapshotStore persists the whole ledger state to a single JSON file.
//
// Saves are atomic: the snapshot is written to a temporary file in the same
// directory and then renamed over the previous one, so a crash mid-write
// never leaves a half-written snapshot behind.
type SnapshotStore struct {
	Path string
}

// Load reads the snapshot at startup. A missing file is not an error: it
// yields an empty ledger.
func (s SnapshotStore) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, snapshot %q does not exist, starting with an empty ledger", s.Path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", s.Path, err)
	}
	defer f.Close()
	l, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshot %q: %w", s.Path, err)
	}
	return l, nil
}

// Save writes the whole state, atomically replacing the previous snapshot.
func (s SnapshotStore) Save(l *Ledger) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create snapshot directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary snapshot: %w", err)
	}
	if err := EncodeSnapshot(tmp, l); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace snapshot %q: %w", s.Path, err)
	}
	return nil
}
