package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pastehound/pastehound/internal/model"
)

// SimpleWriter outputs a human-readable run summary for the terminal.
//
// Plain ASCII formatting, no ANSI colors: it reads the same in every
// terminal and pipes cleanly into files and other tools.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Exploration summary: %s (%s)\n", report.Service, report.BaseURL)
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	fmt.Fprintf(&sb, "  Attempts:      %d\n", report.Attempts)
	fmt.Fprintf(&sb, "  Discoveries:   %d\n", report.ContentCount)
	fmt.Fprintf(&sb, "  Placeholders:  %d\n", report.PlaceholderCount)
	fmt.Fprintf(&sb, "  Available:     %d\n", report.AvailableCount)
	fmt.Fprintf(&sb, "  Errors:        %d\n", report.ErrorCount)
	fmt.Fprintf(&sb, "  Success rate:  %.1f%%\n", report.SuccessRate())
	fmt.Fprintf(&sb, "  Elapsed:       %s\n", report.Elapsed().Round(time.Millisecond))

	if report.Interrupted {
		sb.WriteString("  Stopped by user interrupt.\n")
	}
	if report.AttemptsExhausted {
		sb.WriteString("  Stopped after hitting the attempt limit.\n")
	}

	if len(report.Discoveries) > 0 {
		sb.WriteString("\nDiscovered URLs:\n")
		for i, d := range report.Discoveries {
			if d.Title != "" {
				fmt.Fprintf(&sb, "  %2d. %s  (%s)\n", i+1, d.URL, d.Title)
			} else {
				fmt.Fprintf(&sb, "  %2d. %s\n", i+1, d.URL)
			}
		}
	} else {
		sb.WriteString("\nNo content discovered. Try again or run longer.\n")
	}

	return io.WriteString(w.output, sb.String())
}
