// Package logging provides concrete implementations of the secretscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr (or any writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics never go to stdout, which carries the scan report.
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
