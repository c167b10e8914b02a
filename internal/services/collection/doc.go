// Package collection manages named word collections over a persistence
// backend.
//
// It enforces the store invariants: collection names are unique, no two
// words in a collection are equal under case-insensitive comparison, and
// every successful mutation is durable before it is reported back.
package collection
