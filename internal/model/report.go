package model

import "time"

// RunReport summarizes a single exploration run.
// It accumulates counters while the explorer loop runs and is rendered
// by the report writers once the loop stops.
//
// Design decision: counters are plain ints with an Add method rather
// than a map keyed by Classification because the set of classifications
// is small and fixed, and named fields keep the JSON output stable.
type RunReport struct {
	// Service is the name of the service profile used for the run.
	Service string `json:"service"`

	// BaseURL is the base address candidates were probed against.
	BaseURL string `json:"base_url"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run stopped, for any reason.
	FinishedAt time.Time `json:"finished_at"`

	// Attempts is the total number of candidates probed.
	Attempts int `json:"attempts"`

	// ContentCount is the number of discoveries (pages with real content).
	ContentCount int `json:"content_count"`

	// PlaceholderCount is the number of taken-but-empty pages seen.
	PlaceholderCount int `json:"placeholder_count"`

	// AvailableCount is the number of unclaimed slugs seen (404s).
	AvailableCount int `json:"available_count"`

	// ErrorCount is the number of failed checks (network errors, timeouts).
	ErrorCount int `json:"error_count"`

	// Discoveries lists every discovery in the order it was made.
	Discoveries []Discovery `json:"discoveries,omitempty"`

	// Interrupted is true when the run was stopped by the user rather
	// than by reaching the target count.
	Interrupted bool `json:"interrupted"`

	// AttemptsExhausted is true when the run stopped because the
	// max-attempts safety limit was reached before the target count.
	AttemptsExhausted bool `json:"attempts_exhausted,omitempty"`
}

// NewRunReport creates a RunReport for the given service and base URL
// with the start time set to now.
func NewRunReport(service, baseURL string) *RunReport {
	return &RunReport{
		Service:   service,
		BaseURL:   baseURL,
		StartedAt: time.Now(),
	}
}

// Record updates the counters for a completed page check and, for
// interesting checks, appends the derived discovery.
func (r *RunReport) Record(check *PageCheck) {
	r.Attempts++
	switch check.Classification {
	case ClassContent:
		r.ContentCount++
		r.Discoveries = append(r.Discoveries, NewDiscovery(check))
	case ClassPlaceholder:
		r.PlaceholderCount++
	case ClassAvailable:
		r.AvailableCount++
	case ClassError:
		r.ErrorCount++
	}
}

// Finish stamps the end time of the run.
func (r *RunReport) Finish() {
	r.FinishedAt = time.Now()
}

// Elapsed returns the run duration. When the run has not finished yet
// it returns the time elapsed so far.
func (r *RunReport) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// SuccessRate returns the fraction of attempts that were discoveries,
// in percent. Zero attempts yields zero.
func (r *RunReport) SuccessRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.ContentCount) / float64(r.Attempts) * 100
}
