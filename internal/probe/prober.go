package probe

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/pastehound/pastehound/internal/model"
)

// Prober fetches candidate URLs and produces classified page checks.
//
// Design decision: the http.Client is injected rather than built here
// because proxy configuration belongs to the caller, connection pooling
// works best with one shared client, and tests swap in httptest servers.
type Prober struct {
	// client performs the HTTP requests.
	client *http.Client

	// classifier applies the content heuristic to response bodies.
	classifier *Classifier

	// userAgent is sent with every request.
	userAgent string

	// cookie, when non-empty, is sent as the Cookie header.
	cookie string

	// headers are extra headers for every request.
	headers map[string]string

	// maxBodySize bounds how many body bytes are read per response.
	maxBodySize int64
}

// Option configures a Prober.
type Option func(*Prober)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithCookie sets a Cookie header sent with every request, for services
// that gate content behind a session.
func WithCookie(cookie string) Option {
	return func(p *Prober) {
		p.cookie = cookie
	}
}

// WithHeaders sets extra request headers.
func WithHeaders(headers map[string]string) Option {
	return func(p *Prober) {
		p.headers = headers
	}
}

// WithMaxBodySize bounds how many response bytes are read.
func WithMaxBodySize(size int64) Option {
	return func(p *Prober) {
		p.maxBodySize = size
	}
}

// NewProber creates a Prober using the given client and classifier.
func NewProber(client *http.Client, classifier *Classifier, opts ...Option) *Prober {
	p := &Prober{
		client:      client,
		classifier:  classifier,
		maxBodySize: 5 * 1024 * 1024,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Check fetches a candidate URL and classifies the response.
//
// Network failures are not errors to the caller: the explorer loop
// treats them as "no content" and moves on, so they come back as a
// ClassError check. The error return is reserved for programming
// mistakes such as an unparseable URL.
func (p *Prober) Check(ctx context.Context, url, slug string) (*model.PageCheck, error) {
	check := &model.PageCheck{
		URL:       url,
		Slug:      slug,
		CheckedAt: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if p.cookie != "" {
		req.Header.Set("Cookie", p.cookie)
	}
	for k, v := range p.headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		check.Classification = model.ClassError
		check.Error = err.Error()
		return check, nil
	}
	defer resp.Body.Close()

	check.StatusCode = resp.StatusCode

	// Read at most maxBodySize bytes. A truncated read of a huge page
	// is fine: the markers we look for sit near the top of the document.
	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBodySize))
	if err != nil {
		check.Classification = model.ClassError
		check.Error = err.Error()
		return check, nil
	}

	check.BodySize = len(body)
	if len(body) > 0 {
		sum := blake2b.Sum256(body)
		check.BodyHash = hex.EncodeToString(sum[:])
	}

	check.Classification = p.classifier.Classify(resp.StatusCode, body)
	if check.Classification == model.ClassContent {
		check.Title = ExtractTitle(body)
	}

	return check, nil
}
