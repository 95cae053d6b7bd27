// Package report provides result recording and run summarization.
//
// It contains two kinds of output:
//   - DiscoveryLog: the append-only results file, written one URL per
//     line at the moment each discovery is made
//   - Writers for the end-of-run report: SimpleWriter for terminal
//     display, MarkdownWriter for documentation, JSONWriter for tools
//
// Design decision: report writing is separated from the data structures
// (internal/model) so new output formats can be added without touching
// the explorer loop.
package report
