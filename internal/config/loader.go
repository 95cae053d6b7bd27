package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pastehound"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads service profiles from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers
// decide whether that is fatal based on whether the user asked for the
// file explicitly.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Services == nil {
		cf.Services = make(map[string]ServiceProfile)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .pastehound in the current directory
//  3. .pastehound or config.yaml in the XDG config directory
//  4. .pastehound in the user's home directory
//
// Returns the path if found, or empty string otherwise.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		if p := findInDir(cwd, DefaultConfigFile); p != "" {
			return p
		}
	}

	if p := findInDir(XDGConfigDir(), DefaultConfigFile, "config.yaml"); p != "" {
		return p
	}

	if home, err := os.UserHomeDir(); err == nil {
		if p := findInDir(home, DefaultConfigFile); p != "" {
			return p
		}
	}

	return ""
}

// findInDir returns the path of the first of names that exists in dir,
// or empty string when none do.
func findInDir(dir string, names ...string) string {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
