package collection

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"wordvault/internal/domain"
)

// Service is the word store. It owns the in-memory collections, enforces
// name uniqueness and case-insensitive word dedupe, and writes every
// successful mutation back to the backing store before reporting success.
type Service struct {
	store domain.CollectionStore

	mu          sync.Mutex
	collections domain.Collections
}

// New returns a collection service backed by the given store. Call Load
// before use.
func New(store domain.CollectionStore) *Service {
	return &Service{store: store, collections: domain.Collections{}}
}

// Load populates the in-memory store from persisted state. Absent state is
// an empty store, and unreadable state degrades to an empty store with a
// logged warning; the caller is never failed.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections, err := s.store.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("could not read persisted collections, starting empty")
		s.collections = domain.Collections{}
		return
	}
	s.collections = collections
}

// Save writes the current in-memory store to persisted state in full.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx)
}

// CreateCollection creates an empty collection. An existing name is a
// no-op reported as created == false, not an error.
func (s *Service) CreateCollection(ctx context.Context, name domain.CollectionName) (bool, error) {
	name = domain.CollectionName(strings.TrimSpace(name.String()))
	if name == "" {
		return false, domain.ErrEmptyCollectionName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[name]; ok {
		return false, nil
	}
	s.collections[name] = []domain.Word{}
	if err := s.persist(ctx); err != nil {
		delete(s.collections, name)
		return false, err
	}
	logrus.WithField("collection", name).Debug("collection created")
	return true, nil
}

// AddWord appends word to the named collection, preserving casing as typed.
// A case-insensitive duplicate is a no-op reported as added == false.
func (s *Service) AddWord(ctx context.Context, name domain.CollectionName, word domain.Word) (bool, error) {
	word = domain.Word(strings.TrimSpace(word.String()))
	if word == "" {
		return false, domain.ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, ok := s.collections[name]
	if !ok {
		return false, fmt.Errorf("add word to %q: %w", name, domain.ErrCollectionNotFound)
	}
	for _, existing := range words {
		if existing.Equal(word) {
			return false, nil
		}
	}
	s.collections[name] = append(words, word)
	if err := s.persist(ctx); err != nil {
		s.collections[name] = words
		return false, err
	}
	logrus.WithFields(logrus.Fields{"collection": name, "word": word}).Debug("word added")
	return true, nil
}

// RemoveWord deletes the case-insensitive match of word from the named
// collection. No match is a no-op reported as removed == false.
func (s *Service) RemoveWord(ctx context.Context, name domain.CollectionName, word domain.Word) (bool, error) {
	word = domain.Word(strings.TrimSpace(word.String()))
	if word == "" {
		return false, domain.ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	words, ok := s.collections[name]
	if !ok {
		return false, fmt.Errorf("remove word from %q: %w", name, domain.ErrCollectionNotFound)
	}
	idx := -1
	for i, existing := range words {
		if existing.Equal(word) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	remaining := make([]domain.Word, 0, len(words)-1)
	remaining = append(remaining, words[:idx]...)
	remaining = append(remaining, words[idx+1:]...)

	s.collections[name] = remaining
	if err := s.persist(ctx); err != nil {
		s.collections[name] = words
		return false, err
	}
	logrus.WithFields(logrus.Fields{"collection": name, "word": word}).Debug("word removed")
	return true, nil
}

// ListCollections returns the collection names in lexical order, stable
// within and across sessions.
func (s *Service) ListCollections() []domain.CollectionName {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collections.Names()
}

// Words returns a copy of the named collection's words in insertion order.
func (s *Service) Words(name domain.CollectionName) ([]domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("words of %q: %w", name, domain.ErrCollectionNotFound)
	}
	return append([]domain.Word{}, words...), nil
}

// WordCount returns the number of words in the named collection.
func (s *Service) WordCount(name domain.CollectionName) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, ok := s.collections[name]
	if !ok {
		return 0, fmt.Errorf("count of %q: %w", name, domain.ErrCollectionNotFound)
	}
	return len(words), nil
}

// persist writes the current snapshot; callers hold the lock.
func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.collections.Clone()); err != nil {
		return fmt.Errorf("persist collections: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CollectionService.
var _ domain.CollectionService = (*Service)(nil)
