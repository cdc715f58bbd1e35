// Package cas stores integration state as one JSON document per aggregate target,
// addressed by the hash of its label.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IntegrationStateStore = (*Store)(nil)

// Store implements ports.IntegrationStateStore with a file per aggregate target.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

func filename(dir, label string) string {
	sum := sha256.Sum256([]byte(label))
	return filepath.Join(dir, hex.EncodeToString(sum[:])+".json")
}

// Get retrieves the state recorded for a label in dir. Returns nil, nil if there is none.
func (s *Store) Get(dir, label string) (*domain.IntegrationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filename(dir, label)
	data, err := os.ReadFile(path) //nolint:gosec // Path is a trusted directory and a hashed filename
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read integration state"), "target", label)
	}

	var state domain.IntegrationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to unmarshal integration state"), "target", label), "path", path)
	}
	return &state, nil
}

// Put stores the state under its label in dir, replacing any previous one.
func (s *Store) Put(dir string, state domain.IntegrationState) error {
	if state.Label == "" {
		return zerr.New("integration state without label")
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal integration state"), "target", state.Label)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create state directory"), "path", dir)
	}

	// Readers never observe a partially written document.
	path := filename(dir, state.Label)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write integration state"), "path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit integration state"), "path", path)
	}
	return nil
}
