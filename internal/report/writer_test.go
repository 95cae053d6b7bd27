package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pastehound/pastehound/internal/model"
)

// testReport returns a finished report with a mix of classifications.
func testReport() *model.RunReport {
	r := model.NewRunReport("rentry", "https://rentry.co")
	r.StartedAt = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r.FinishedAt = r.StartedAt.Add(42 * time.Second)
	r.Record(&model.PageCheck{
		URL:            "https://rentry.co/abc123",
		Slug:           "abc123",
		Title:          "Shopping List",
		Classification: model.ClassContent,
		CheckedAt:      r.StartedAt.Add(10 * time.Second),
	})
	r.Record(&model.PageCheck{Classification: model.ClassAvailable})
	r.Record(&model.PageCheck{Classification: model.ClassPlaceholder})
	r.Record(&model.PageCheck{Classification: model.ClassError})
	return r
}

// TestSimpleWriter verifies the terminal summary contents.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewSimpleWriter(&buf).Write(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		"rentry",
		"https://rentry.co",
		"Attempts:      4",
		"Discoveries:   1",
		"Success rate:  25.0%",
		"https://rentry.co/abc123",
		"Shopping List",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestSimpleWriterEmptyRun verifies the no-discoveries message.
func TestSimpleWriterEmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := model.NewRunReport("rentry", "https://rentry.co")
	r.Finish()
	if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No content discovered") {
		t.Errorf("output missing empty-run message:\n%s", buf.String())
	}
}

// TestSimpleWriterInterrupted verifies the interrupt note appears.
func TestSimpleWriterInterrupted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testReport()
	r.Interrupted = true
	if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "interrupt") {
		t.Errorf("output missing interrupt note:\n%s", buf.String())
	}
}

// TestMarkdownWriter verifies the structure of the Markdown report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Pastehound Run Report",
		"## Classification Summary",
		"## Discoveries",
		"mermaid",
		"[https://rentry.co/abc123](https://rentry.co/abc123)",
		"Shopping List",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

// TestMarkdownWriterEmptyRun verifies a zero-attempt run renders
// without a pie chart and without a discovery table.
func TestMarkdownWriterEmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := model.NewRunReport("rentry", "https://rentry.co")
	r.Finish()
	if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "mermaid") {
		t.Error("pie chart rendered for zero attempts")
	}
	if !strings.Contains(out, "No content discovered") {
		t.Errorf("markdown missing empty message:\n%s", out)
	}
}

// TestJSONWriter verifies the report round-trips through JSON.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded model.RunReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Attempts != 4 {
		t.Errorf("Attempts = %d, want 4", decoded.Attempts)
	}
	if decoded.ContentCount != 1 {
		t.Errorf("ContentCount = %d, want 1", decoded.ContentCount)
	}
	if len(decoded.Discoveries) != 1 || decoded.Discoveries[0].URL != "https://rentry.co/abc123" {
		t.Errorf("Discoveries = %+v", decoded.Discoveries)
	}
}
