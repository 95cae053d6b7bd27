package config

import "errors"

// Configuration validation errors.
// These are returned by Config.Validate and by the interactive prompts.
//
// Design decision: package-level sentinel errors rather than ad hoc
// errors.New calls inside Validate, so callers can use errors.Is while
// the messages stay human-readable.
var (
	// ErrInvalidCount is returned when the discovery count is negative.
	// Zero means unlimited; a negative count has no meaning.
	ErrInvalidCount = errors.New("invalid count: must be a positive number or 'unlimited'")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when a delay setting is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidMaxAttempts is returned when the attempt cap is negative.
	// Use 0 for no cap.
	ErrInvalidMaxAttempts = errors.New("invalid max attempts: must be non-negative")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrNoOutputFile is returned when the results file path is empty.
	// Every discovery must be recorded somewhere.
	ErrNoOutputFile = errors.New("no output file specified")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are requested. Only one report format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidBaseURL is returned when the base URL override is not a
	// valid absolute http or https URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http or https URL")

	// ErrUnknownService is returned when the named service profile is
	// neither built in nor present in the config file.
	ErrUnknownService = errors.New("unknown service: not built in and not found in config file")
)
