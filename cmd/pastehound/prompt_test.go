package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pastehound/pastehound/internal/config"
)

// TestParseCount covers numeric input, unlimited synonyms, and rejects.
func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"positive number", "5", 5, false},
		{"number with whitespace", "  12 ", 12, false},
		{"unlimited", "unlimited", 0, false},
		{"infinite", "infinite", 0, false},
		{"inf", "inf", 0, false},
		{"u", "u", 0, false},
		{"uppercase unlimited", "UNLIMITED", 0, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"garbage", "abc", 0, true},
		{"empty", "", 0, true},
		{"float", "2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseCount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidCount) {
					t.Errorf("parseCount(%q) error = %v, want ErrInvalidCount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCount(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestPromptCount verifies re-prompting on invalid input and EOF handling.
func TestPromptCount(t *testing.T) {
	t.Parallel()

	t.Run("valid number on first try", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		n, err := promptCount(strings.NewReader("7\n"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 7 {
			t.Errorf("count = %d, want 7", n)
		}
	})

	t.Run("invalid input re-prompts", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		n, err := promptCount(strings.NewReader("nope\n-1\n3\n"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Errorf("count = %d, want 3", n)
		}
		if got := strings.Count(out.String(), "How many discoveries"); got != 3 {
			t.Errorf("prompted %d times, want 3", got)
		}
	})

	t.Run("unlimited returns zero", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		n, err := promptCount(strings.NewReader("unlimited\n"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("count = %d, want 0", n)
		}
		if !strings.Contains(out.String(), "Unlimited mode") {
			t.Error("expected unlimited mode notice")
		}
	})

	t.Run("EOF returns error", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		if _, err := promptCount(strings.NewReader(""), &out); err == nil {
			t.Error("expected error on EOF")
		}
	})
}

// TestPromptOpenBrowser verifies yes/no synonyms and re-prompting.
func TestPromptOpenBrowser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y\n", true},
		{"yes", "yes\n", true},
		{"true", "true\n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"uppercase Y", "Y\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			got, err := promptOpenBrowser(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("promptOpenBrowser(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	t.Run("invalid input re-prompts", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		got, err := promptOpenBrowser(strings.NewReader("maybe\nn\n"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Error("expected false")
		}
		if !strings.Contains(out.String(), "Please enter 'y' or 'n'") {
			t.Error("expected re-prompt message")
		}
	})

	t.Run("EOF returns error", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		if _, err := promptOpenBrowser(strings.NewReader(""), &out); err == nil {
			t.Error("expected error on EOF")
		}
	})
}
