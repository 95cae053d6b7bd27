// Package explorer implements the content discovery loop: generate a
// random slug, probe the URL, classify the response, and record hits
// until the target count is reached or the run is interrupted.
//
// The loop is deliberately single-threaded and synchronous. Discovery
// is rate-limited by politeness anyway, so concurrency would only buy
// complexity here.
package explorer
