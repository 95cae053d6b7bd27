package model

import "testing"

// TestClassificationString verifies the human-readable names.
func TestClassificationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class Classification
		want  string
	}{
		{"content", ClassContent, "content"},
		{"placeholder", ClassPlaceholder, "placeholder"},
		{"available", ClassAvailable, "available"},
		{"error", ClassError, "error"},
		{"unknown zero value", ClassUnknown, "unknown"},
		{"out of range value", Classification(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.class.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestClassificationInteresting verifies that only content counts as a discovery.
func TestClassificationInteresting(t *testing.T) {
	t.Parallel()

	if !ClassContent.Interesting() {
		t.Error("ClassContent should be interesting")
	}
	for _, c := range []Classification{ClassUnknown, ClassPlaceholder, ClassAvailable, ClassError} {
		if c.Interesting() {
			t.Errorf("%s should not be interesting", c)
		}
	}
}
