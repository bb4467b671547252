package store

import (
	"context"
	"errors"
	"strings"
)

const (
	RepositoryBackendFile  = "file"
	RepositoryBackendBbolt = "bbolt"
)

// Repository bundles the persisted stores behind one backend. Notes
// are deliberately not part of it: they stay plain files either way.
type Repository interface {
	State() StateStore
	Keymaps() KeymapStore
	Backend() string
	Close() error
}

type RepositoryPaths struct {
	StatePath  string
	KeymapPath string
	DBPath     string
}

type fileRepository struct {
	state   StateStore
	keymaps KeymapStore
}

func NewFileRepository(paths RepositoryPaths) Repository {
	return &fileRepository{
		state:   NewFileStateStore(paths.StatePath),
		keymaps: NewFileKeymapStore(paths.KeymapPath),
	}
}

func (r *fileRepository) State() StateStore {
	return r.state
}

func (r *fileRepository) Keymaps() KeymapStore {
	return r.keymaps
}

func (r *fileRepository) Backend() string {
	return RepositoryBackendFile
}

func (r *fileRepository) Close() error {
	return nil
}

func OpenRepository(paths RepositoryPaths, backend string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", RepositoryBackendFile:
		return NewFileRepository(paths), nil
	case RepositoryBackendBbolt:
		if strings.TrimSpace(paths.DBPath) == "" {
			return nil, errors.New("db path is required for bbolt repository")
		}
		return NewBboltRepository(paths.DBPath)
	default:
		return nil, errors.New("unsupported repository backend: " + backend)
	}
}

// SeedRepositoryFromFiles migrates file-backed state into dst when dst
// is empty. This keeps an existing session when the user switches to
// transactional storage.
func SeedRepositoryFromFiles(ctx context.Context, dst Repository, paths RepositoryPaths) error {
	if dst == nil || dst.Backend() == RepositoryBackendFile {
		return nil
	}
	src := NewFileRepository(paths)
	defer src.Close()

	if err := seedState(ctx, dst.State(), src.State()); err != nil {
		return err
	}
	return seedKeymap(ctx, dst.Keymaps(), src.Keymaps())
}

func seedState(ctx context.Context, dst StateStore, src StateStore) error {
	if dst == nil || src == nil {
		return nil
	}
	current, err := dst.Load(ctx)
	if err != nil {
		return err
	}
	if len(current.Tabs) > 0 {
		return nil
	}
	legacy, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if len(legacy.Tabs) == 0 {
		return nil
	}
	return dst.Save(ctx, legacy)
}

func seedKeymap(ctx context.Context, dst KeymapStore, src KeymapStore) error {
	if dst == nil || src == nil {
		return nil
	}
	current, err := dst.Load(ctx)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		return nil
	}
	legacy, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if len(legacy) == 0 {
		return nil
	}
	return dst.Save(ctx, legacy)
}
