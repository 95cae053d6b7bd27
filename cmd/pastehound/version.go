package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release build time. When empty, the values are
// resolved from the build info the Go toolchain embeds.
var (
	version = ""
	commit  = ""
	date    = ""
)

// versionInfo returns the version, commit hash, and build date,
// preferring the ldflags values over the embedded build info.
func versionInfo() (ver, rev, built string) {
	ver, rev, built = version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok {
		if ver == "" && info.Main.Version != "" {
			ver = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if rev == "" {
					rev = s.Value
					if len(rev) > 7 {
						rev = rev[:7]
					}
				}
			case "vcs.time":
				if built == "" {
					built = s.Value
				}
			}
		}
	}

	if ver == "" {
		ver = "(devel)"
	}
	if rev == "" {
		rev = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return ver, rev, built
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of pastehound.`,
		Run: func(cmd *cobra.Command, _ []string) {
			ver, rev, built := versionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "pastehound %s (commit %s, built %s)\n", ver, rev, built)
		},
	}
}
