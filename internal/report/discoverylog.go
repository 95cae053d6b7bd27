package report

import (
	"fmt"
	"os"
	"sync"
)

// DiscoveryLog is the append-only results file: one URL per line, in
// discovery order. The file is opened once per run in append mode, so
// successive runs extend it rather than overwrite prior results.
//
// Write failures here are fatal to the run. Losing a discovery after
// classifying it would silently break the invariant that every
// interesting URL appears in the file.
type DiscoveryLog struct {
	// f is the open results file.
	f *os.File

	// path is the file path, kept for error messages.
	path string

	// mu guards f. The explorer loop is single-threaded, but the
	// guard makes Close safe to call from a signal path.
	mu sync.Mutex
}

// OpenDiscoveryLog opens the results file at path for appending,
// creating it if absent.
func OpenDiscoveryLog(path string) (*DiscoveryLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open results file %s: %w", path, err)
	}
	return &DiscoveryLog{f: f, path: path}, nil
}

// Append writes one discovered URL as a line and flushes it to disk.
// The sync per line is deliberate: discoveries are rare relative to
// attempts, and an interrupted run must not lose the ones it made.
func (l *DiscoveryLog) Append(url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintln(l.f, url); err != nil {
		return fmt.Errorf("failed to append to results file %s: %w", l.path, err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("failed to sync results file %s: %w", l.path, err)
	}
	return nil
}

// Path returns the results file path.
func (l *DiscoveryLog) Path() string {
	return l.path
}

// Close closes the underlying file.
func (l *DiscoveryLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
