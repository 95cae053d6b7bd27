// Package slug generates random candidate identifiers for URL probing.
// A slug is a short string drawn from a fixed alphabet with its length
// picked uniformly from a configured range, matching the identifiers
// paste services assign to new entries.
package slug
