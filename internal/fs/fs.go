// Package fs provides the filesystem abstraction used by the book store.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the store needs
//   - [Real]: production implementation using the [os] package
//   - [Chaos]: testing implementation that injects read and write faults
//
// Example usage:
//
//	fsys := fs.NewReal()
//	data, err := fsys.ReadFile("book_data.json")
//	if err != nil {
//	    return err
//	}
package fs

import "os"

// FS defines the filesystem operations for loading and persisting a
// collection file.
//
// Two implementations are provided:
//   - [Real]: production use, wraps [os] package
//   - [Chaos]: testing use, injects failures
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces path with data atomically.
	// Uses a temp file + rename so readers see either the old or the new
	// content, never a mix of both.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
