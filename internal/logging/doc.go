// Package logging provides concrete implementations of the tsea.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to a writer (stderr in the CLI)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
