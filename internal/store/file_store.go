package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"wordvault/internal/domain"
)

// FileStore persists collections as a single JSON object on disk: top-level
// keys are collection names, values are word arrays in insertion order.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Load reads the data file. A missing or empty file loads as an empty
// snapshot; a file that does not decode into the expected shape returns an
// error wrapping domain.ErrCorruptData.
func (s *FileStore) Load(ctx context.Context) (domain.Collections, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Collections{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return domain.Collections{}, nil
	}

	var collections domain.Collections
	if err := json.Unmarshal(b, &collections); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	if collections == nil {
		collections = domain.Collections{}
	}
	// Repair null word lists so every collection is a valid (possibly
	// empty) sequence.
	for name, words := range collections {
		if words == nil {
			collections[name] = []domain.Word{}
		}
	}
	return collections, nil
}

// Save overwrites the data file with the given snapshot.
func (s *FileStore) Save(ctx context.Context, collections domain.Collections) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.path, collections, 0o600)
}

// Compile-time assertion that FileStore implements domain.CollectionStore.
var _ domain.CollectionStore = (*FileStore)(nil)
