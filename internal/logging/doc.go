// Package logging provides concrete implementations of the checksignals.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Advisory findings are not log messages; they go through report.ConsoleReporter.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
