// Package model defines the core data structures for pastehound.
// It contains the classification taxonomy for probed pages, the record
// types for individual checks and discoveries, and the run report that
// summarizes an exploration session.
package model
