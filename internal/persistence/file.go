package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"oko/coaching-app/internal/store"
)

// fileStore keeps the snapshot as one JSON document on disk. Timestamps
// serialize as RFC 3339 strings via encoding/json.
type fileStore struct {
	path string
}

// NewFileStore creates a SnapshotStore backed by a JSON file.
func NewFileStore(path string) SnapshotStore {
	return &fileStore{path: path}
}

// Save writes atomically: marshal to a temp file, then rename over the
// target so a crash mid-write never truncates the previous snapshot.
func (f *fileStore) Save(ctx context.Context, state *store.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *fileStore) Load(ctx context.Context) (*store.State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	var state store.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
