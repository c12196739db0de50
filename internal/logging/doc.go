// Package logging provides a minimal logging interface and adapters for the
// raz command line programs.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error). This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (tests, piped sessions)
//
// Usage:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Format: "auto", Output: os.Stderr})
//	logger.Info("program started", "program", "calc")
//
// Logs always go to a separate writer (stderr by default) so they never mix
// with program output on fd 1.
package logging
