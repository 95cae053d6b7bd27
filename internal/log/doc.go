// Package log provides a redacting slog handler for pastehound.
// Service profiles may carry session cookies and auth headers for
// private paste services; the handler masks those values so they never
// end up in log output.
package log
