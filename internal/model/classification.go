package model

// Classification is the outcome of probing a single candidate URL.
// It distinguishes real user content from the service's boilerplate
// pages so the explorer knows which hits are worth keeping.
type Classification int

// Classification values ordered roughly by how interesting they are.
const (
	// ClassUnknown is the zero value, used before a page has been classified.
	ClassUnknown Classification = iota

	// ClassContent marks a page that serves real user content.
	// This is the only classification that counts as a discovery.
	ClassContent

	// ClassPlaceholder marks a page that exists but contains only the
	// service's own boilerplate (an empty or template paste).
	ClassPlaceholder

	// ClassAvailable marks a slug that is not taken (the service
	// responded 404). The URL could be claimed for a new paste.
	ClassAvailable

	// ClassError marks a failed check: network error, timeout, or an
	// unexpected status code. Treated the same as "no content".
	ClassError
)

// String returns a short human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case ClassContent:
		return "content"
	case ClassPlaceholder:
		return "placeholder"
	case ClassAvailable:
		return "available"
	case ClassError:
		return "error"
	default:
		return "unknown"
	}
}

// Interesting reports whether this classification counts as a discovery.
func (c Classification) Interesting() bool {
	return c == ClassContent
}
