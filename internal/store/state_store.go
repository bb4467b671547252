package store

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/netrom-source/notator/internal/session"
)

// StateStore persists the tab session snapshot between runs.
type StateStore interface {
	Load(ctx context.Context) (session.Snapshot, error)
	Save(ctx context.Context, snap session.Snapshot) error
}

type FileStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

// Load returns the stored snapshot, or a zero snapshot when none has
// been written yet.
func (s *FileStateStore) Load(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap session.Snapshot
	if err := readJSON(s.path, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session.Snapshot{}, nil
		}
		return session.Snapshot{}, err
	}
	return snap, nil
}

func (s *FileStateStore) Save(ctx context.Context, snap session.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSONAtomic(s.path, snap)
}
