// Package store implements the persisted closure definition store.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DefinitionStore = (*Store)(nil)

// Store implements ports.DefinitionStore using a flat JSON file.
//
// The file is re-read when its modification time changes, so definitions
// written by another process become visible without a restart.
type Store struct {
	path string

	mu       sync.RWMutex
	cache    map[string]domain.Definition
	loadedAt time.Time
}

// NewStore creates a new DefinitionStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Definition),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat definition store"), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read definition store"), "path", s.path)
	}

	cache := make(map[string]domain.Definition)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cache); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal definition store"), "path", s.path)
		}
	}

	s.cache = cache
	s.loadedAt = info.ModTime()
	return nil
}

// stale reports whether the file changed since it was last loaded or saved.
func (s *Store) stale() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat definition store"), "path", s.path)
	}
	return !info.ModTime().Equal(s.loadedAt), nil
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal definition store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for definition store"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write definition store"), "path", s.path)
	}

	if info, err := os.Stat(s.path); err == nil {
		s.loadedAt = info.ModTime()
	}
	return nil
}

// Get retrieves the definition for the given action.
// Returns nil, nil if not found.
func (s *Store) Get(action string) (*domain.Definition, error) {
	s.mu.RLock()
	stale, err := s.stale()
	if err == nil && !stale {
		def, ok := s.cache[action]
		s.mu.RUnlock()
		if !ok {
			return nil, nil
		}
		return &def, nil
	}
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if stale, err := s.stale(); err != nil {
		return nil, err
	} else if stale {
		if err := s.loadLocked(); err != nil {
			return nil, err
		}
	}

	def, ok := s.cache[action]
	if !ok {
		return nil, nil
	}
	return &def, nil
}

// Put stores the definition, stamping UpdatedAt when it is unset.
// Changes written by other processes are picked up before saving.
func (s *Store) Put(def domain.Definition) error {
	if def.Action.IsZero() {
		return domain.ErrEmptyActionName
	}
	if def.UpdatedAt.IsZero() {
		def.UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stale, err := s.stale()
	if err != nil {
		return err
	}
	if stale {
		if err := s.loadLocked(); err != nil {
			return err
		}
	}

	s.cache[def.Action.String()] = def
	return s.saveLocked()
}

// Open opens the store at path as a ports.DefinitionStore.
func Open(path string) (ports.DefinitionStore, error) {
	s, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
