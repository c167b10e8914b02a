// Package app wires application dependencies for the CLI.
//
// It loads the yaml configuration, builds the configured storage backend and
// the collection service from Config, and exposes them via the Wire struct
// for commands to use.
package app
