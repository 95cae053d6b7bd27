package explorer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pastehound/pastehound/internal/browser"
	"github.com/pastehound/pastehound/internal/model"
	"github.com/pastehound/pastehound/internal/probe"
	"github.com/pastehound/pastehound/internal/report"
	"github.com/pastehound/pastehound/internal/slug"
)

// Explorer runs the discovery loop for one service.
//
// Design decision: collaborators (generator, prober, results log,
// opener) are injected rather than constructed here, so tests can run
// the full loop against an httptest server with a no-op opener.
type Explorer struct {
	// service is the profile name, carried into the run report.
	service string

	// baseURL is the service base address candidates are appended to.
	baseURL string

	// gen produces candidate slugs.
	gen *slug.Generator

	// prober fetches and classifies candidate URLs.
	prober *probe.Prober

	// results is the append-only discovery file. Append failures
	// abort the run.
	results *report.DiscoveryLog

	// opener opens discoveries in a browser. NopOpener when the user
	// declined browser opening.
	opener browser.Opener

	// target is the number of discoveries to find. Zero means
	// unlimited: run until the context is cancelled.
	target int

	// maxAttempts caps total probes. Zero means no cap.
	maxAttempts int

	// delay is the politeness pause between attempts.
	delay time.Duration

	// browserDelay is the extra pause after opening a discovery, so a
	// streak of hits doesn't open a wall of tabs at once.
	browserDelay time.Duration

	// progress receives per-attempt progress lines.
	progress io.Writer

	// logger receives diagnostics.
	logger *slog.Logger
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithTarget sets the number of discoveries to stop at.
// Zero means unlimited.
func WithTarget(n int) Option {
	return func(e *Explorer) {
		e.target = n
	}
}

// WithMaxAttempts caps the total number of probes. Zero means no cap.
func WithMaxAttempts(n int) Option {
	return func(e *Explorer) {
		e.maxAttempts = n
	}
}

// WithDelay sets the pause between attempts.
func WithDelay(d time.Duration) Option {
	return func(e *Explorer) {
		e.delay = d
	}
}

// WithBrowserDelay sets the extra pause after a browser open.
func WithBrowserDelay(d time.Duration) Option {
	return func(e *Explorer) {
		e.browserDelay = d
	}
}

// WithOpener sets the browser opener for discoveries.
func WithOpener(o browser.Opener) Option {
	return func(e *Explorer) {
		e.opener = o
	}
}

// WithProgress sets the destination for progress lines.
func WithProgress(w io.Writer) Option {
	return func(e *Explorer) {
		e.progress = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Explorer) {
		e.logger = l
	}
}

// New creates an Explorer for the given service.
func New(service, baseURL string, gen *slug.Generator, prober *probe.Prober, results *report.DiscoveryLog, opts ...Option) *Explorer {
	e := &Explorer{
		service:  service,
		baseURL:  baseURL,
		gen:      gen,
		prober:   prober,
		results:  results,
		opener:   browser.NopOpener{},
		progress: io.Discard,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes the discovery loop until the target count is reached,
// the attempt cap is hit, or ctx is cancelled.
//
// Cancellation is not an error: the report comes back with Interrupted
// set and a nil error so the caller can still print the summary. The
// error return is reserved for failures that must abort the run, above
// all a write failure on the results file.
func (e *Explorer) Run(ctx context.Context) (*model.RunReport, error) {
	rep := model.NewRunReport(e.service, e.baseURL)
	defer rep.Finish()

	for {
		select {
		case <-ctx.Done():
			rep.Interrupted = true
			return rep, nil
		default:
		}

		if e.maxAttempts > 0 && rep.Attempts >= e.maxAttempts {
			rep.AttemptsExhausted = true
			return rep, nil
		}

		s := e.gen.Next()
		url := e.baseURL + "/" + s

		check, err := e.prober.Check(ctx, url, s)
		if err != nil {
			return rep, err
		}

		// A request aborted by cancellation classifies as an error;
		// report it as an interrupt instead of counting it.
		if ctx.Err() != nil {
			rep.Interrupted = true
			return rep, nil
		}

		rep.Record(check)
		fmt.Fprintf(e.progress, "attempt %4d: %s ... %s\n", rep.Attempts, url, check.Classification)

		if check.Error != "" {
			e.logger.Debug("probe failed", "url", url, "error", check.Error)
		}

		if check.Classification.Interesting() {
			if err := e.results.Append(url); err != nil {
				return rep, fmt.Errorf("recording discovery: %w", err)
			}

			fmt.Fprintf(e.progress, "discovery %d: %s", rep.ContentCount, url)
			if check.Title != "" {
				fmt.Fprintf(e.progress, "  (%s)", check.Title)
			}
			fmt.Fprintln(e.progress)

			if err := e.opener.Open(url); err != nil {
				// Not fatal: the URL is recorded either way.
				e.logger.Warn("failed to open browser", "url", url, "error", err)
			} else if e.browserDelay > 0 {
				if !sleepCtx(ctx, e.browserDelay) {
					rep.Interrupted = true
					return rep, nil
				}
			}
		}

		if e.target > 0 && rep.ContentCount >= e.target {
			return rep, nil
		}

		if !sleepCtx(ctx, e.delay) {
			rep.Interrupted = true
			return rep, nil
		}
	}
}

// sleepCtx pauses for d unless ctx is cancelled first.
// Returns false when the pause was cut short by cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
