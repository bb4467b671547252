package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/netrom-source/notator/internal/session"
)

var (
	bucketState   = []byte("session_state")
	bucketKeymaps = []byte("keymaps")
	keyState      = []byte("state")
	keyBindings   = []byte("bindings")
)

type bboltRepository struct {
	db      *bolt.DB
	state   StateStore
	keymaps KeymapStore
}

func NewBboltRepository(path string) (Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("repository db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltRepository{
		db:      db,
		state:   &bboltStateStore{db: db},
		keymaps: &bboltKeymapStore{db: db},
	}, nil
}

func (r *bboltRepository) State() StateStore {
	return r.state
}

func (r *bboltRepository) Keymaps() KeymapStore {
	return r.keymaps
}

func (r *bboltRepository) Backend() string {
	return RepositoryBackendBbolt
}

func (r *bboltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketState); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketKeymaps); err != nil {
			return err
		}
		return nil
	})
}

type bboltStateStore struct {
	db *bolt.DB
	mu sync.Mutex
}

func (s *bboltStateStore) Load(ctx context.Context) (session.Snapshot, error) {
	var snap session.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		raw := b.Get(keyState)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, &snap)
	})
	if err != nil {
		return session.Snapshot{}, err
	}
	return snap, nil
}

func (s *bboltStateStore) Save(ctx context.Context, snap session.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return errors.New("session state bucket missing")
		}
		return b.Put(keyState, raw)
	})
}

type bboltKeymapStore struct {
	db *bolt.DB
	mu sync.Mutex
}

func (s *bboltKeymapStore) Load(ctx context.Context) (map[string]string, error) {
	bindings := map[string]string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKeymaps)
		if b == nil {
			return nil
		}
		raw := b.Get(keyBindings)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, &bindings)
	})
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

func (s *bboltKeymapStore) Save(ctx context.Context, bindings map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bindings == nil {
		return errors.New("bindings are required")
	}
	raw, err := json.Marshal(bindings)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKeymaps)
		if b == nil {
			return errors.New("keymaps bucket missing")
		}
		return b.Put(keyBindings, raw)
	})
}
