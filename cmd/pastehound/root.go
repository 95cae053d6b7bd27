// Package main provides the entry point for the pastehound CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pastehound.
func NewRootCmd() *cobra.Command {
	ver, _, _ := versionInfo()

	cmd := &cobra.Command{
		Use:   "pastehound",
		Short: "Content discovery tool for paste-hosting services",
		Long: `Pastehound discovers what is actually posted on paste-hosting services
(rentry.co by default) by probing random URL slugs.

Each hit that carries real content is appended to a results file and can
be opened in your default browser as it is found.`,
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExploreCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
