// Package scanner drives a directory walk and runs component inspection on
// every matching file.
//
// The scanner package is responsible for:
//   - Recursively discovering candidate files in a directory tree
//   - Skipping files that do not end with the configured extension, unread
//   - Reading each candidate and handing it to the inspector
//   - Streaming findings to a reporter as soon as they are produced
//   - Returning the accumulated findings and counters as a ScanResult
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
