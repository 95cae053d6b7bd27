package model

import "time"

// PageCheck holds the outcome of probing a single candidate URL.
// It is created fresh for each loop iteration and discarded unless the
// page classified as content, in which case a Discovery is derived from it.
type PageCheck struct {
	// URL is the full URL that was probed.
	URL string `json:"url"`

	// Slug is the random identifier used as the URL path segment.
	Slug string `json:"slug"`

	// StatusCode is the HTTP response status code. Zero when the
	// request failed before a response was received.
	StatusCode int `json:"status_code"`

	// Title is the page title extracted from the <title> tag.
	// Empty for non-HTML responses and failed checks.
	Title string `json:"title,omitempty"`

	// BodySize is the number of body bytes read (after truncation to
	// the configured maximum).
	BodySize int `json:"body_size"`

	// BodyHash is the hex-encoded BLAKE2b-256 fingerprint of the body.
	// Identical bodies (e.g. the service's placeholder page) share a hash.
	BodyHash string `json:"body_hash,omitempty"`

	// Classification is the heuristic verdict for this page.
	Classification Classification `json:"classification"`

	// Error describes the network failure for ClassError checks.
	Error string `json:"error,omitempty"`

	// CheckedAt is when the probe was performed.
	CheckedAt time.Time `json:"checked_at"`
}

// Discovery is a candidate that classified as real content.
// Discoveries are append-only: once recorded they are never mutated.
type Discovery struct {
	// URL is the full URL of the discovered page.
	URL string `json:"url"`

	// Slug is the random identifier that produced the hit.
	Slug string `json:"slug"`

	// Title is the discovered page's title, when one could be extracted.
	Title string `json:"title,omitempty"`

	// BodyHash is the content fingerprint carried over from the check.
	BodyHash string `json:"body_hash,omitempty"`

	// FoundAt is when the discovery was made.
	FoundAt time.Time `json:"found_at"`
}

// NewDiscovery derives a Discovery from a page check.
// The caller is responsible for only calling this on interesting checks.
func NewDiscovery(check *PageCheck) Discovery {
	return Discovery{
		URL:      check.URL,
		Slug:     check.Slug,
		Title:    check.Title,
		BodyHash: check.BodyHash,
		FoundAt:  check.CheckedAt,
	}
}
