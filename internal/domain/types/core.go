package types

import "strings"

// CollectionName identifies a word collection. Matching is exact and
// case-sensitive.
type CollectionName string

// String returns the string form of the collection name.
func (n CollectionName) String() string { return string(n) }

// Word is a single entry in a collection. Casing is stored as typed;
// equality between words ignores case.
type Word string

// String returns the string form of the word.
func (w Word) String() string { return string(w) }

// Equal reports whether two words are the same under case folding.
func (w Word) Equal(other Word) bool {
	return strings.EqualFold(string(w), string(other))
}
