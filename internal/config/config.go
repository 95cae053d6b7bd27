package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior observed when probing paste services by hand:
// responses are fast, but hammering the service is both impolite and a
// quick way to get rate limited.
const (
	// DefaultServiceName is the built-in service profile used when the
	// user does not name one.
	DefaultServiceName = "rentry"

	// DefaultBaseURL is the base address of the default paste service.
	DefaultBaseURL = "https://rentry.co"

	// DefaultTimeout is the per-request timeout. Paste services respond
	// in well under a second normally; 10 seconds tolerates bad days
	// without stalling the loop for long on dead connections.
	DefaultTimeout = 10 * time.Second

	// DefaultDelay is the politeness pause between attempts. 300ms keeps
	// the request rate around 3/s, low enough not to look like abuse.
	DefaultDelay = 300 * time.Millisecond

	// DefaultBrowserDelay is the extra pause after opening a discovery
	// in the browser, so rapid hits don't spawn a wall of tabs at once.
	DefaultBrowserDelay = 1500 * time.Millisecond

	// DefaultAlphabet is the slug character set. Paste services
	// generate lowercase alphanumeric slugs, so that is what we probe.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultMinSlugLength and DefaultMaxSlugLength bound the random
	// slug length. Auto-generated slugs on the default service fall in
	// this range; shorter ones are almost always hand-picked and taken.
	DefaultMinSlugLength = 4
	DefaultMaxSlugLength = 8

	// DefaultOutputFile is the append-only results file, one URL per line.
	DefaultOutputFile = "discoveries.txt"

	// DefaultUserAgent is sent with every request. A common browser
	// User-Agent avoids the bot-specific responses some services serve.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultMaxBodySize limits how much of a response body is read.
	// 5MB covers any real paste while bounding memory per request.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "pastehound"
)

// Config holds all options for an exploration run.
// It is populated once from CLI flags and interactive prompts, validated,
// and then treated as immutable by the rest of the program.
//
// Design decision: a single flat struct, passed by pointer through the
// program rather than kept in global state. The option count is small
// enough that nesting would only add noise.
type Config struct {
	// Service is the name of the service profile to explore.
	// Profiles come from the config file; "rentry" is built in.
	Service string

	// BaseURL overrides the service profile's base address when set.
	BaseURL string

	// Count is the number of discoveries to find before stopping.
	// Zero means unlimited: the loop runs until interrupted.
	Count int

	// OpenBrowser opens each discovery in the system default browser.
	OpenBrowser bool

	// Timeout is the per-request timeout for HTTP probes.
	Timeout time.Duration

	// Delay is the pause between attempts.
	Delay time.Duration

	// BrowserDelay is the extra pause after a browser open.
	BrowserDelay time.Duration

	// MaxAttempts caps the total number of probes regardless of
	// discoveries made. Zero means no cap.
	MaxAttempts int

	// OutputFile is the path of the append-only results file.
	OutputFile string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When set, all probes are routed through it.
	ProxyAddress string

	// UserAgent is the User-Agent header for probe requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// ConfigFilePath is the path to the service-profile config file.
	// If empty, the tool searches the usual locations (see FindConfigFile).
	ConfigFilePath string

	// Profiles holds service profiles loaded from the config file.
	Profiles *File

	// JSONReport writes the run report as JSON instead of the
	// human-readable summary. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport writes the run report as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the destination for the run report.
	// When empty the report goes to stdout.
	ReportFile string

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a Config with default values.
//
// Design decision: a constructor instead of relying on zero values,
// because most defaults are non-zero (timeout, delay, output path) and
// the constructor doubles as documentation of what they are.
func NewConfig() *Config {
	return &Config{
		Service:      DefaultServiceName,
		Timeout:      DefaultTimeout,
		Delay:        DefaultDelay,
		BrowserDelay: DefaultBrowserDelay,
		OutputFile:   DefaultOutputFile,
		UserAgent:    DefaultUserAgent,
		MaxBodySize:  DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for pastehound.
// On Linux: ~/.config/pastehound
// On macOS: ~/Library/Application Support/pastehound
// On Windows: %APPDATA%\pastehound
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found
// as one of the package sentinel errors.
//
// We validate once after flag parsing rather than at each point of use
// so a bad run fails before the first network request.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return ErrInvalidCount
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Delay < 0 || c.BrowserDelay < 0 {
		return ErrInvalidDelay
	}

	if c.MaxAttempts < 0 {
		return ErrInvalidMaxAttempts
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.OutputFile == "" {
		return ErrNoOutputFile
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidBaseURL
		}
	}

	return nil
}
