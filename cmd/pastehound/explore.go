package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pastehound/pastehound/internal/browser"
	"github.com/pastehound/pastehound/internal/config"
	"github.com/pastehound/pastehound/internal/explorer"
	"github.com/pastehound/pastehound/internal/log"
	"github.com/pastehound/pastehound/internal/model"
	"github.com/pastehound/pastehound/internal/probe"
	"github.com/pastehound/pastehound/internal/report"
	"github.com/pastehound/pastehound/internal/slug"
)

// NewExploreCmd creates the explore command.
func NewExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [service]",
		Short: "Probe random slugs and record pages with real content",
		Long: `Explore probes a paste-hosting service with random URL slugs and
classifies each response:

- content:     a real paste (a discovery; recorded and optionally opened)
- placeholder: the slug is taken but holds only service boilerplate
- available:   the slug is unclaimed (404)
- error:       network failure or unexpected status (skipped)

Discovered URLs are appended to the results file as they are found, one
per line. Count and browser preferences are prompted for when the flags
are omitted.

Examples:
  # Interactive: prompts for count and browser opening
  pastehound explore

  # Find 10 pastes without prompting, opening each in the browser
  pastehound explore -n 10 --open-browser

  # Run until interrupted, no browser
  pastehound explore -n unlimited --open-browser=false

  # Probe a different service defined in the config file
  pastehound explore minipaste -c myconfig.yaml

  # Route probes through a SOCKS5 proxy
  pastehound explore -n 5 --open-browser=false -x 127.0.0.1:9050

  # Write a Markdown run report
  pastehound explore -n 5 --open-browser=false -m -r report.md

Configuration file (.pastehound) example:
  services:
    minipaste:
      baseURL: https://paste.example.org
      notFoundMarkers:
        - "no such paste"
      placeholderMarkers:
        - "create a new paste"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExploreCmd,
	}

	// Run size flags
	cmd.Flags().StringP("count", "n", "",
		"Number of discoveries to find, or 'unlimited' (prompted if omitted)")
	cmd.Flags().IntP("max-attempts", "a", 0,
		"Maximum total probes regardless of discoveries (0 = no cap)")

	// Behavior flags
	cmd.Flags().BoolP("open-browser", "b", false,
		"Open each discovery in the default browser (prompted if omitted)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each probe request")
	cmd.Flags().Duration("delay", config.DefaultDelay,
		"Politeness delay between probes")
	cmd.Flags().Duration("browser-delay", config.DefaultBrowserDelay,
		"Extra pause after opening a discovery in the browser")

	// Target flags
	cmd.Flags().StringP("base-url", "u", "",
		"Override the service base URL (e.g. https://paste.example.org)")
	cmd.Flags().StringP("proxy", "x", "",
		"Route probes through a SOCKS5 proxy at the given host:port")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Results file to append discovered URLs to")
	cmd.Flags().BoolP("json", "j", false,
		"Write the run report as JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write the run report as Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("report", "r", "",
		"Write the run report to the specified file instead of stdout")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pastehound in current or home directory)")

	return cmd
}

// runExploreCmd executes the explore command.
func runExploreCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Prompt for the values the user did not supply as flags,
	// matching the interactive behavior of the tool's origins.
	if !cmd.Flags().Changed("count") {
		count, err := promptCount(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		cfg.Count = count
	}
	if !cmd.Flags().Changed("open-browser") {
		open, err := promptOpenBrowser(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}
		cfg.OpenBrowser = open
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling so Ctrl+C stops the loop and
	// still prints the summary of discoveries made so far.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runExplore(ctx, cfg, logger, cmd)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.Service = args[0]
	}

	var err error

	if cmd.Flags().Changed("count") {
		countStr, err := cmd.Flags().GetString("count")
		if err != nil {
			return nil, err
		}
		cfg.Count, err = parseCount(countStr)
		if err != nil {
			return nil, err
		}
	}

	cfg.OpenBrowser, err = cmd.Flags().GetBool("open-browser")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Delay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.BrowserDelay, err = cmd.Flags().GetDuration("browser-delay")
	if err != nil {
		return nil, err
	}

	cfg.MaxAttempts, err = cmd.Flags().GetInt("max-attempts")
	if err != nil {
		return nil, err
	}

	cfg.BaseURL, err = cmd.Flags().GetString("base-url")
	if err != nil {
		return nil, err
	}

	cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load service profiles from the config file.
	// An explicitly specified file must exist; otherwise a missing
	// file just means the built-in profile is used.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Profiles, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runExplore wires up the explorer and runs the discovery loop.
func runExplore(ctx context.Context, cfg *config.Config, logger *slog.Logger, cmd *cobra.Command) error {
	profile, err := cfg.Profiles.GetProfile(cfg.Service)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Service)
	}

	baseURL := profile.BaseURL
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	logger.Info("starting exploration",
		"service", cfg.Service,
		"baseURL", baseURL,
		"count", cfg.Count,
		"openBrowser", cfg.OpenBrowser,
		"proxy", cfg.ProxyAddress,
	)

	var client *http.Client
	if cfg.ProxyAddress != "" {
		client, err = probe.NewSOCKS5Client(cfg.ProxyAddress, cfg.Timeout)
		if err != nil {
			return err
		}
	} else {
		client = probe.NewHTTPClient(cfg.Timeout)
	}

	gen, err := slug.New(profile.Alphabet, profile.MinSlugLength, profile.MaxSlugLength)
	if err != nil {
		return fmt.Errorf("invalid slug settings for %s: %w", cfg.Service, err)
	}

	proberOpts := []probe.Option{
		probe.WithUserAgent(cfg.UserAgent),
		probe.WithMaxBodySize(cfg.MaxBodySize),
	}
	if profile.Cookie != "" {
		proberOpts = append(proberOpts, probe.WithCookie(profile.Cookie))
	}
	if len(profile.Headers) > 0 {
		proberOpts = append(proberOpts, probe.WithHeaders(profile.Headers))
	}
	prober := probe.NewProber(client,
		probe.NewClassifier(profile.NotFoundMarkers, profile.PlaceholderMarkers),
		proberOpts...)

	results, err := report.OpenDiscoveryLog(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer results.Close()

	explorerOpts := []explorer.Option{
		explorer.WithTarget(cfg.Count),
		explorer.WithMaxAttempts(cfg.MaxAttempts),
		explorer.WithDelay(cfg.Delay),
		explorer.WithProgress(cmd.OutOrStdout()),
		explorer.WithLogger(logger),
	}
	if cfg.OpenBrowser {
		explorerOpts = append(explorerOpts,
			explorer.WithOpener(browser.SystemOpener{}),
			explorer.WithBrowserDelay(cfg.BrowserDelay),
		)
	}

	e := explorer.New(cfg.Service, baseURL, gen, prober, results, explorerOpts...)

	if cfg.Count == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Exploring %s until interrupted...\n\n", baseURL)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Exploring %s for %d discoveries...\n\n", baseURL, cfg.Count)
	}

	startTime := time.Now()
	rep, err := e.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("exploration finished",
		"attempts", rep.Attempts,
		"discoveries", rep.ContentCount,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	fmt.Fprintln(cmd.OutOrStdout())
	if err := outputReport(cfg, rep, cmd); err != nil {
		return err
	}

	if rep.ContentCount > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %d discovered URLs to %s\n", rep.ContentCount, results.Path())
	}

	return nil
}

// outputReport writes the run report in the requested format.
func outputReport(cfg *config.Config, rep *model.RunReport, cmd *cobra.Command) error {
	output := io.Writer(cmd.OutOrStdout())
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output)
	}

	_, err := w.Write(rep)
	return err
}
