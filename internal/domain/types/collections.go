package types

import "slices"

// Collections is a full store snapshot: collection name to its words in
// insertion order. A nil map and an empty map both mean "no collections".
type Collections map[CollectionName][]Word

// Names returns the collection names in lexical order.
func (c Collections) Names() []CollectionName {
	names := make([]CollectionName, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the snapshot.
func (c Collections) Clone() Collections {
	out := make(Collections, len(c))
	for name, words := range c {
		out[name] = append([]Word{}, words...)
	}
	return out
}
