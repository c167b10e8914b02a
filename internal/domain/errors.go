package domain

import "errors"

var (
	// ErrCollectionNotFound is returned when an operation references a
	// collection name not present in the store.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrEmptyCollectionName is returned when a collection name is empty
	// after trimming surrounding whitespace.
	ErrEmptyCollectionName = errors.New("collection name must not be empty")

	// ErrEmptyWord is returned when a word is empty after trimming
	// surrounding whitespace.
	ErrEmptyWord = errors.New("word must not be empty")

	// ErrCorruptData marks persisted state that does not decode into a
	// mapping of collection names to word lists.
	ErrCorruptData = errors.New("persisted data is not a valid collection mapping")
)
