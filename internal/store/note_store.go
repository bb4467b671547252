package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteInfo describes one note file in the notes directory.
type NoteInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// NoteStore reads and writes plain-text notes. Notes stay ordinary
// .txt files on disk regardless of the repository backend, so they
// remain greppable and editable outside the app.
type NoteStore struct {
	dir string
	mu  sync.Mutex
}

func NewNoteStore(dir string) *NoteStore {
	return &NoteStore{dir: dir}
}

// List returns the .txt notes in the notes directory.
func (s *NoteStore) List(ctx context.Context) ([]NoteInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []NoteInfo{}, nil
		}
		return nil, err
	}
	out := make([]NoteInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, NoteInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(s.dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	// Newest first for easier note triage UX.
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModTime.Equal(out[j].ModTime) {
			return out[i].Name < out[j].Name
		}
		return out[i].ModTime.After(out[j].ModTime)
	})
	return out, nil
}

// Read loads a note's contents. A missing file maps to ErrNoteNotFound.
func (s *NoteStore) Read(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoteNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Write stores a note atomically.
func (s *NoteStore) Write(ctx context.Context, path, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeTextAtomic(path, []byte(text), 0o644)
}

// Delete removes the note file. A missing file maps to ErrNoteNotFound.
func (s *NoteStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}
