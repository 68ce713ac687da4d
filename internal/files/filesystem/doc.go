// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for directory traversal and file reads, enabling
// testability through an in-memory implementation while the OS implementation
// is used in production.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be walked depth-first
//   - File: Represents an individual entry with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Symbolic links are never followed into directories, so a link cycle cannot
// make a walk loop.
package filesystem
