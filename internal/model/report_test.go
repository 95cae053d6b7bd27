package model

import (
	"testing"
	"time"
)

// TestRunReportRecord verifies that each classification updates the
// matching counter and that only content checks produce discoveries.
func TestRunReportRecord(t *testing.T) {
	t.Parallel()

	r := NewRunReport("rentry", "https://rentry.co")

	checks := []*PageCheck{
		{URL: "https://rentry.co/abc123", Slug: "abc123", Classification: ClassContent, Title: "Notes", CheckedAt: time.Now()},
		{URL: "https://rentry.co/def456", Slug: "def456", Classification: ClassPlaceholder},
		{URL: "https://rentry.co/ghi789", Slug: "ghi789", Classification: ClassAvailable},
		{URL: "https://rentry.co/jkl012", Slug: "jkl012", Classification: ClassError, Error: "timeout"},
		{URL: "https://rentry.co/mno345", Slug: "mno345", Classification: ClassContent, CheckedAt: time.Now()},
	}
	for _, c := range checks {
		r.Record(c)
	}

	t.Run("attempts count all checks", func(t *testing.T) {
		t.Parallel()
		if r.Attempts != 5 {
			t.Errorf("Attempts = %d, want 5", r.Attempts)
		}
	})

	t.Run("per-classification counters", func(t *testing.T) {
		t.Parallel()
		if r.ContentCount != 2 {
			t.Errorf("ContentCount = %d, want 2", r.ContentCount)
		}
		if r.PlaceholderCount != 1 {
			t.Errorf("PlaceholderCount = %d, want 1", r.PlaceholderCount)
		}
		if r.AvailableCount != 1 {
			t.Errorf("AvailableCount = %d, want 1", r.AvailableCount)
		}
		if r.ErrorCount != 1 {
			t.Errorf("ErrorCount = %d, want 1", r.ErrorCount)
		}
	})

	t.Run("discoveries preserve order and fields", func(t *testing.T) {
		t.Parallel()
		if len(r.Discoveries) != 2 {
			t.Fatalf("len(Discoveries) = %d, want 2", len(r.Discoveries))
		}
		if r.Discoveries[0].URL != "https://rentry.co/abc123" {
			t.Errorf("first discovery URL = %q", r.Discoveries[0].URL)
		}
		if r.Discoveries[0].Title != "Notes" {
			t.Errorf("first discovery Title = %q, want %q", r.Discoveries[0].Title, "Notes")
		}
		if r.Discoveries[1].Slug != "mno345" {
			t.Errorf("second discovery Slug = %q, want %q", r.Discoveries[1].Slug, "mno345")
		}
	})
}

// TestRunReportSuccessRate verifies the success rate calculation,
// including the zero-attempts edge case.
func TestRunReportSuccessRate(t *testing.T) {
	t.Parallel()

	t.Run("zero attempts yields zero", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport("rentry", "https://rentry.co")
		if got := r.SuccessRate(); got != 0 {
			t.Errorf("SuccessRate() = %f, want 0", got)
		}
	})

	t.Run("one discovery in four attempts is 25 percent", func(t *testing.T) {
		t.Parallel()
		r := NewRunReport("rentry", "https://rentry.co")
		r.Record(&PageCheck{Classification: ClassContent})
		r.Record(&PageCheck{Classification: ClassAvailable})
		r.Record(&PageCheck{Classification: ClassAvailable})
		r.Record(&PageCheck{Classification: ClassError})
		if got := r.SuccessRate(); got != 25 {
			t.Errorf("SuccessRate() = %f, want 25", got)
		}
	})
}

// TestRunReportElapsed verifies that Finish stamps the end time and
// Elapsed uses it once present.
func TestRunReportElapsed(t *testing.T) {
	t.Parallel()

	r := NewRunReport("rentry", "https://rentry.co")
	r.StartedAt = time.Now().Add(-2 * time.Second)

	if r.Elapsed() < 2*time.Second {
		t.Errorf("Elapsed() before finish = %v, want >= 2s", r.Elapsed())
	}

	r.Finish()
	if r.FinishedAt.IsZero() {
		t.Error("Finish() did not set FinishedAt")
	}
	fixed := r.Elapsed()
	time.Sleep(10 * time.Millisecond)
	if r.Elapsed() != fixed {
		t.Error("Elapsed() should be stable after Finish()")
	}
}
