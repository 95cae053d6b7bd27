// Package probe performs the HTTP side of content discovery: it fetches
// candidate URLs, bounds how much of each response is read, and applies
// the marker heuristic that separates real pastes from the service's
// not-found and placeholder pages.
package probe
