// Package types holds the plain data types of the word-collection domain.
package types
