package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"wordvault/internal/domain"
	collectionsvc "wordvault/internal/services/collection"
	"wordvault/internal/store"
)

// Wire bundles the store and service for the CLI.
type Wire struct {
	Store       domain.CollectionStore
	Collections domain.CollectionService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	logrus.SetLevel(level)

	var cs domain.CollectionStore
	switch cfg.Backend {
	case BackendFile:
		cs = store.NewFileStore(cfg.Data.Path)
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cs = store.NewRedisStore(client)
	case BackendMemory:
		cs = store.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return &Wire{
		Store:       cs,
		Collections: collectionsvc.New(cs),
	}, nil
}
