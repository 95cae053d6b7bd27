package browser

import "github.com/pkg/browser"

// Opener launches a URL in some viewer.
// The explorer depends on this interface rather than on pkg/browser
// directly so tests can record opens instead of spawning processes.
type Opener interface {
	// Open launches the URL. A failure to open is not fatal to an
	// exploration run; callers log it and continue.
	Open(url string) error
}

// SystemOpener opens URLs in the operating system's default browser.
type SystemOpener struct{}

// Open launches the URL via the platform's standard mechanism
// (xdg-open, open, or rundll32 depending on the OS).
func (SystemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// NopOpener ignores every open request.
// Used when the user declines browser opening.
type NopOpener struct{}

// Open does nothing and always succeeds.
func (NopOpener) Open(string) error { return nil }
