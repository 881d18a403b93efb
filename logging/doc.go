// Package logging provides a minimal logging interface and adapters for the
// message contract packages.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that codecs, streams and clients use for diagnostics. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - ProtocolLogger with session and submission context helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	dec := wire.NewDecoder(r, wire.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
