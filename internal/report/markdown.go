package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/pastehound/pastehound/internal/model"
)

// MarkdownWriter outputs run reports in Markdown, for documentation
// and sharing. Uses the nao1215/markdown library for type-safe
// generation of tables, alerts, and mermaid charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeDiscoveries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Pastehound Run Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Service", report.Service},
			{"Base URL", "`" + report.BaseURL + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", report.Elapsed().Round(time.Millisecond).String()},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText describes how the run ended.
func (w *MarkdownWriter) statusText(report *model.RunReport) string {
	switch {
	case report.Interrupted:
		return "Interrupted by user"
	case report.AttemptsExhausted:
		return "Attempt limit reached"
	default:
		return "Completed"
	}
}

// writeSummary writes the classification counts and distribution chart.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Classification Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Classification", "Count"},
		Rows: [][]string{
			{"Content (discoveries)", strconv.Itoa(report.ContentCount)},
			{"Placeholder", strconv.Itoa(report.PlaceholderCount)},
			{"Available", strconv.Itoa(report.AvailableCount)},
			{"Error", strconv.Itoa(report.ErrorCount)},
			{"**Total attempts**", "**" + strconv.Itoa(report.Attempts) + "**"},
		},
	})
	md.PlainText("")

	if report.Attempts > 0 {
		w.writePieChart(md, report)
	}
}

// writePieChart writes a mermaid pie chart of the classification mix.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.RunReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Classification Distribution"),
		piechart.WithShowData(true),
	)

	if report.ContentCount > 0 {
		chart.LabelAndIntValue("Content", uint64(report.ContentCount))
	}
	if report.PlaceholderCount > 0 {
		chart.LabelAndIntValue("Placeholder", uint64(report.PlaceholderCount))
	}
	if report.AvailableCount > 0 {
		chart.LabelAndIntValue("Available", uint64(report.AvailableCount))
	}
	if report.ErrorCount > 0 {
		chart.LabelAndIntValue("Error", uint64(report.ErrorCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeDiscoveries writes the table of discovered URLs.
func (w *MarkdownWriter) writeDiscoveries(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Discoveries")
	md.PlainText("")

	if len(report.Discoveries) == 0 {
		md.PlainText("No content discovered.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Discoveries))
	for _, d := range report.Discoveries {
		title := d.Title
		if title == "" {
			title = "-"
		}
		rows = append(rows, []string{
			"[" + d.URL + "](" + d.URL + ")",
			title,
			d.FoundAt.Format("15:04:05"),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"URL", "Title", "Found"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("Generated by pastehound")
}
