package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/openplay/courtqueue/internal/model"
	"github.com/openplay/courtqueue/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu   sync.RWMutex
	snap []byte // JSON, so reads get a detached copy like a real backend
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSnapshot(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = data
	return nil
}

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, model.ErrSessionNotFound
	}
	var snap model.Snapshot
	if err := json.Unmarshal(s.snap, &snap); err != nil {
		return nil, err
	}
	if snap.IsEmpty() {
		return nil, model.ErrEmptySnapshot
	}
	return &snap, nil
}

func (s *Storage) ClearSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}
