package interfaces

import (
	"context"

	domaintypes "wordvault/internal/domain/types"
)

// CollectionService manages named word collections with case-insensitive
// duplicate prevention. Mutations persist before they report success.
type CollectionService interface {
	// Load populates the in-memory store from persisted state. Missing or
	// unreadable state degrades to an empty store; it never fails the caller.
	Load(ctx context.Context)

	// Save writes the current in-memory store to persisted state.
	Save(ctx context.Context) error

	// CreateCollection creates an empty collection. Creating a collection
	// that already exists is a no-op reported as created == false.
	CreateCollection(ctx context.Context, name domaintypes.CollectionName) (created bool, err error)

	// AddWord appends word to the named collection unless a case-insensitive
	// match already exists, in which case added == false.
	AddWord(ctx context.Context, name domaintypes.CollectionName, word domaintypes.Word) (added bool, err error)

	// RemoveWord deletes the case-insensitive match of word from the named
	// collection; removed == false when no match exists.
	RemoveWord(ctx context.Context, name domaintypes.CollectionName, word domaintypes.Word) (removed bool, err error)

	// ListCollections returns the collection names in lexical order.
	ListCollections() []domaintypes.CollectionName

	// Words returns the words of the named collection in insertion order.
	Words(name domaintypes.CollectionName) ([]domaintypes.Word, error)

	// WordCount returns the number of words in the named collection.
	WordCount(name domaintypes.CollectionName) (int, error)
}
