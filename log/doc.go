// Package log provides a thin, concurrency-safe wrapper around
// [log/slog] with a Trace level below Debug, selectable text or JSON
// output, optional colorized pretty printing, and a package-level
// default logger.
//
// The zero value of [Logger] is usable and discards all messages, so
// library code can accept a Logger without nil checks.
package log
