package report

import (
	"io"

	"github.com/pastehound/pastehound/internal/model"
)

// Writer renders a finished run report to some destination.
// Implementations exist for terminal text, Markdown, and JSON.
type Writer interface {
	// Write outputs the report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.RunReport) (int, error)
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
