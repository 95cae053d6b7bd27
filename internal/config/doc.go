// Package config provides configuration structures and utilities for
// pastehound. It defines the run configuration populated from CLI flags
// and interactive prompts, the YAML service-profile file format, and
// the default values for the explorer loop.
package config
