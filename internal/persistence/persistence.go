package persistence

import (
	"context"
	"errors"

	"oko/coaching-app/internal/store"
)

// --- Error Definitions ---
var (
	// ErrNoSnapshot means no prior state exists; callers seed defaults.
	ErrNoSnapshot = errors.New("no snapshot stored")
)

// SnapshotStore persists the whole application state tree. Snapshots must
// round-trip losslessly for every entity type, timestamps included.
type SnapshotStore interface {
	Save(ctx context.Context, state *store.State) error
	Load(ctx context.Context) (*store.State, error)
}
