package store

import (
	"context"
	"errors"
	"os"
	"sync"
)

// KeymapStore persists user key overrides as a flat command-to-key
// map. Defaults live in the UI layer; only explicit overrides are
// stored.
type KeymapStore interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, bindings map[string]string) error
}

type FileKeymapStore struct {
	path string
	mu   sync.Mutex
}

func NewFileKeymapStore(path string) *FileKeymapStore {
	return &FileKeymapStore{path: path}
}

func (s *FileKeymapStore) Load(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bindings := map[string]string{}
	err := readJSON(s.path, &bindings)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return bindings, nil
		}
		return nil, err
	}
	return bindings, nil
}

func (s *FileKeymapStore) Save(ctx context.Context, bindings map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bindings == nil {
		return errors.New("bindings are required")
	}
	return writeJSONAtomic(s.path, bindings)
}
