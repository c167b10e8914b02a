package store

import (
	"context"
	"encoding/json"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"wordvault/internal/domain"
)

// MemoryStore keeps collections in process memory using the same key layout
// as RedisStore. State lasts for the lifetime of the store only; it backs
// the ephemeral "memory" backend and tests.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

// Load reassembles the snapshot from the cached index and collection entries.
func (s *MemoryStore) Load(ctx context.Context) (domain.Collections, error) {
	raw, ok := s.cache.Get(indexKey)
	if !ok {
		return domain.Collections{}, nil
	}

	var names []domain.CollectionName
	if err := json.Unmarshal([]byte(raw.(string)), &names); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}

	collections := make(domain.Collections, len(names))
	for _, name := range names {
		val, ok := s.cache.Get(collectionKey(name))
		if !ok {
			collections[name] = []domain.Word{}
			continue
		}
		var words []domain.Word
		if err := json.Unmarshal([]byte(val.(string)), &words); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
		}
		if words == nil {
			words = []domain.Word{}
		}
		collections[name] = words
	}
	return collections, nil
}

// Save overwrites cached state with the given snapshot.
func (s *MemoryStore) Save(ctx context.Context, collections domain.Collections) error {
	if raw, ok := s.cache.Get(indexKey); ok {
		var stale []domain.CollectionName
		if json.Unmarshal([]byte(raw.(string)), &stale) == nil {
			for _, name := range stale {
				if _, ok := collections[name]; !ok {
					s.cache.Delete(collectionKey(name))
				}
			}
		}
	}

	for name, words := range collections {
		b, err := json.Marshal(words)
		if err != nil {
			return fmt.Errorf("marshal collection %q: %w", name, err)
		}
		s.cache.Set(collectionKey(name), string(b), gocache.NoExpiration)
	}
	idx, err := json.Marshal(collections.Names())
	if err != nil {
		return fmt.Errorf("marshal collection index: %w", err)
	}
	s.cache.Set(indexKey, string(idx), gocache.NoExpiration)
	return nil
}

// Compile-time assertion that MemoryStore implements domain.CollectionStore.
var _ domain.CollectionStore = (*MemoryStore)(nil)
