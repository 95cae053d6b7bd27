// Package main provides the entry point for the pastehound CLI.
//
// Pastehound is a content discovery tool for paste-hosting services.
// It probes random URL slugs, classifies what it finds, and records
// pages that carry real content.
//
// Usage:
//
//	pastehound explore
//	pastehound explore -n 10 --open-browser
//
// See --help for all available options.
package main

// main is the entry point for pastehound.
func main() {
	Execute()
}
