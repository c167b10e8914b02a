// Package store provides persistence backends for word collections.
//
// It contains concrete implementations of domain.CollectionStore, all with
// full-snapshot load/save semantics:
//
//   - FileStore    a single JSON object file, written atomically
//   - RedisStore   one Redis key per collection plus an index key
//   - MemoryStore  ephemeral in-process state with the Redis key layout
package store
