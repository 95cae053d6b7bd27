package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pastehound/pastehound/internal/model"
)

// TestProberCheck verifies request headers, body handling, and the
// classification of typical service responses.
func TestProberCheck(t *testing.T) {
	t.Parallel()

	var gotUA, gotCookie, gotExtra string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		gotExtra = r.Header.Get("X-Probe")

		switch strings.TrimPrefix(r.URL.Path, "/") {
		case "realone":
			w.Write([]byte("<html><title>Recipe</title><body>actual paste text</body></html>"))
		case "emptyone":
			w.Write([]byte("welcome to the markdown paste service"))
		case "goneone":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	classifier := NewClassifier(nil, []string{"markdown paste service"})
	p := NewProber(srv.Client(), classifier,
		WithUserAgent("probe-test/1.0"),
		WithCookie("session=abc"),
		WithHeaders(map[string]string{"X-Probe": "yes"}),
	)

	t.Run("content page", func(t *testing.T) {
		check, err := p.Check(context.Background(), srv.URL+"/realone", "realone")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Classification != model.ClassContent {
			t.Errorf("Classification = %s, want content", check.Classification)
		}
		if check.StatusCode != 200 {
			t.Errorf("StatusCode = %d, want 200", check.StatusCode)
		}
		if check.Title != "Recipe" {
			t.Errorf("Title = %q, want Recipe", check.Title)
		}
		if check.BodyHash == "" {
			t.Error("expected BodyHash to be set")
		}
		if check.Slug != "realone" {
			t.Errorf("Slug = %q, want realone", check.Slug)
		}
		if gotUA != "probe-test/1.0" {
			t.Errorf("User-Agent = %q", gotUA)
		}
		if gotCookie != "session=abc" {
			t.Errorf("Cookie = %q", gotCookie)
		}
		if gotExtra != "yes" {
			t.Errorf("X-Probe = %q", gotExtra)
		}
	})

	t.Run("placeholder page", func(t *testing.T) {
		check, err := p.Check(context.Background(), srv.URL+"/emptyone", "emptyone")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Classification != model.ClassPlaceholder {
			t.Errorf("Classification = %s, want placeholder", check.Classification)
		}
	})

	t.Run("404 page", func(t *testing.T) {
		check, err := p.Check(context.Background(), srv.URL+"/goneone", "goneone")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Classification != model.ClassAvailable {
			t.Errorf("Classification = %s, want available", check.Classification)
		}
	})

	t.Run("server error page", func(t *testing.T) {
		check, err := p.Check(context.Background(), srv.URL+"/boom", "boom")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if check.Classification != model.ClassError {
			t.Errorf("Classification = %s, want error", check.Classification)
		}
	})
}

// TestProberCheckNetworkError verifies that a refused connection comes
// back as a ClassError check, not as an error return, so the explorer
// loop continues.
func TestProberCheckNetworkError(t *testing.T) {
	t.Parallel()

	// Grab an address and immediately close the listener.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	p := NewProber(&http.Client{Timeout: time.Second}, NewClassifier(nil, nil))

	check, err := p.Check(context.Background(), dead+"/abc", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.Classification != model.ClassError {
		t.Errorf("Classification = %s, want error", check.Classification)
	}
	if check.Error == "" {
		t.Error("expected Error message to be recorded")
	}
}

// TestProberCheckTimeout verifies that a request timeout is swallowed
// like any other network failure.
func TestProberCheckTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewProber(&http.Client{Timeout: 50 * time.Millisecond}, NewClassifier(nil, nil))

	check, err := p.Check(context.Background(), srv.URL+"/slow", "slow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.Classification != model.ClassError {
		t.Errorf("Classification = %s, want error", check.Classification)
	}
}

// TestProberCheckBodyLimit verifies that only maxBodySize bytes of a
// large response are read.
func TestProberCheckBodyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 10_000)))
	}))
	defer srv.Close()

	p := NewProber(srv.Client(), NewClassifier(nil, nil), WithMaxBodySize(1024))

	check, err := p.Check(context.Background(), srv.URL+"/big", "big")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if check.BodySize != 1024 {
		t.Errorf("BodySize = %d, want 1024", check.BodySize)
	}
	if check.Classification != model.ClassContent {
		t.Errorf("Classification = %s, want content", check.Classification)
	}
}

// TestProberCheckBadURL verifies the error return for malformed URLs.
func TestProberCheckBadURL(t *testing.T) {
	t.Parallel()

	p := NewProber(&http.Client{}, NewClassifier(nil, nil))
	if _, err := p.Check(context.Background(), "http://bad url with spaces", "x"); err == nil {
		t.Error("expected error for malformed URL")
	}
}
