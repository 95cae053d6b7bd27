// Package browser opens discovered URLs in the system default browser.
// It defines a small Opener interface so the explorer loop can be
// tested without spawning browser processes.
package browser
