// Package commands defines the wordvault CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - create   Create a new, empty word collection
//   - add      Add a word to a collection
//   - remove   Remove a word from a collection
//   - list     List collections with their word counts
//   - words    Print the words of a collection
//   - count    Print the word count of a collection
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph (store,
// collection service) before any subcommand runs, so handlers share one app
// context whose in-memory state was loaded from persisted storage.
package commands
