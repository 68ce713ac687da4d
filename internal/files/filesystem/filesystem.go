package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual walk entry with its metadata and content accessor
type File interface {
	// Path returns the walk root joined with the entry names leading to this file
	Path() string

	// RelativePath returns the path relative to the walk root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the path the directory was opened with
	Path() string

	// Walk traverses the directory tree depth-first in pre-order, calling fn for
	// each file and directory. Directories are fully expanded before their
	// remaining siblings are visited.
	// Listing or stat failures are passed to fn as (nil, err); returning nil from
	// fn skips the failing entry and continues the walk.
	// If fn returns an error, walking stops and that error is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
