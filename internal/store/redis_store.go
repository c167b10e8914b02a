package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wordvault/internal/domain"
)

// Key layout: "collection:<name>" holds the JSON word array of one
// collection; indexKey holds the JSON array of names that fixes which
// collections exist.
const (
	collectionKeyPrefix = "collection:"
	indexKey            = "collections:index"
)

// RedisStore persists collections in Redis for setups where the word lists
// are shared across machines. The index key is the source of truth for
// which collections exist.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore returns a RedisStore using the given client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func collectionKey(name domain.CollectionName) string {
	return collectionKeyPrefix + name.String()
}

// Load reads the index and every collection it names. A missing index loads
// as an empty snapshot.
func (s *RedisStore) Load(ctx context.Context) (domain.Collections, error) {
	raw, err := s.client.Get(ctx, indexKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Collections{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection index: %w", err)
	}

	var names []domain.CollectionName
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}

	collections := make(domain.Collections, len(names))
	for _, name := range names {
		val, err := s.client.Get(ctx, collectionKey(name)).Result()
		if errors.Is(err, redis.Nil) {
			// Indexed but missing; treat as an empty collection.
			collections[name] = []domain.Word{}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load collection %q: %w", name, err)
		}
		var words []domain.Word
		if err := json.Unmarshal([]byte(val), &words); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
		}
		if words == nil {
			words = []domain.Word{}
		}
		collections[name] = words
	}
	return collections, nil
}

// Save overwrites persisted state: collections no longer in the snapshot are
// deleted, the rest and the index are written in one pipeline.
func (s *RedisStore) Save(ctx context.Context, collections domain.Collections) error {
	idx, err := json.Marshal(collections.Names())
	if err != nil {
		return fmt.Errorf("marshal collection index: %w", err)
	}

	pipe := s.client.TxPipeline()

	if raw, err := s.client.Get(ctx, indexKey).Result(); err == nil {
		var stale []domain.CollectionName
		if json.Unmarshal([]byte(raw), &stale) == nil {
			for _, name := range stale {
				if _, ok := collections[name]; !ok {
					pipe.Del(ctx, collectionKey(name))
				}
			}
		}
	}

	for name, words := range collections {
		b, err := json.Marshal(words)
		if err != nil {
			return fmt.Errorf("marshal collection %q: %w", name, err)
		}
		pipe.Set(ctx, collectionKey(name), b, 0)
	}
	pipe.Set(ctx, indexKey, idx, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save collections: %w", err)
	}
	return nil
}

// Compile-time assertion that RedisStore implements domain.CollectionStore.
var _ domain.CollectionStore = (*RedisStore)(nil)
