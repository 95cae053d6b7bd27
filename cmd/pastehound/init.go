package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/pastehound.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".pastehound"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new pastehound configuration file",
		Long: `Initialize creates a new .pastehound configuration file in the current directory.

The generated file includes:
- Commented examples for service profiles
- The heuristic marker lists that drive classification
- Documentation for all available options

Examples:
  # Create .pastehound in current directory
  pastehound init

  # Create config file at a specific path
  pastehound init -o myconfig.yaml

  # Force overwrite existing file
  pastehound init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/pastehound.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// 0600: the file may later hold session cookies for private services
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure service profiles such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Base URL and slug alphabet of other paste services")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Not-found and placeholder marker phrases")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Session cookies and headers for private services")

	return nil
}
