package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/validation"
)

// FileStore keeps the snapshot as one JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields an empty snapshot; a file
// that fails the snapshot schema is malformed.
func (s *FileStore) Load(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgReadSnapshotFmt, domain.ErrPersistence, s.path, err)
	}

	if err := validation.Default().ValidateBytes(data, validation.SnapshotSchema); err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgDecodeSnapshotFmt, domain.ErrMalformedSnapshot, s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf(ErrMsgDecodeSnapshotFmt, domain.ErrMalformedSnapshot, s.path, err)
	}
	return snap.Normalize(), nil
}

// Save writes to a temporary file beside the target and renames it into
// place, so a crash mid-write never leaves a truncated snapshot.
func (s *FileStore) Save(_ context.Context, snap Snapshot) error {
	data, err := json.MarshalIndent(snap.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeSnapshotFmt, domain.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, SnapshotDirMode); err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}
	if err := tmp.Chmod(SnapshotFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFmt, domain.ErrPersistence, s.path, err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
