package storage

import (
	"context"

	"github.com/openplay/courtqueue/internal/model"
)

// Storage defines the interface for session snapshot persistence. The
// engine owns live state in memory; storage only sees settled snapshots,
// written on a debounce after each mutation.
type Storage interface {
	// SaveSnapshot persists the current session snapshot
	SaveSnapshot(ctx context.Context, snap *model.Snapshot) error

	// LoadSnapshot returns the persisted snapshot. Returns
	// model.ErrSessionNotFound when nothing has been saved, and
	// model.ErrEmptySnapshot when the saved state holds no players or
	// courts (treated as "no saved state" by callers).
	LoadSnapshot(ctx context.Context) (*model.Snapshot, error)

	// ClearSnapshot removes the persisted snapshot (session terminated)
	ClearSnapshot(ctx context.Context) error
}
