// Package config holds the application configuration: where theme documents
// live, which theme is active by default, and how generated stylesheets are
// scoped. Configuration is a single JSON file under the user's config
// directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that overrides the default
// config file location.
const EnvConfigPath = "THEMECAST_CONFIG"

// Config is the application configuration
type Config struct {
	// DefaultTheme is the theme id applied when none is requested
	DefaultTheme string `json:"default_theme"`

	// ThemesDir is the built-in theme directory shipped with the binary
	ThemesDir string `json:"themes_dir"`

	// CustomThemesDir is an optional user-managed theme directory that
	// takes priority over the built-in one
	CustomThemesDir string `json:"custom_themes_dir,omitempty"`

	// Selector scopes generated stylesheet output
	Selector string `json:"selector"`

	// LogFile receives diagnostic output; empty means stderr
	LogFile string `json:"log_file,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultTheme: "vscode-dark",
		ThemesDir:    "themes",
		Selector:     ":root",
		LogFile:      "",
	}
}

// LoadConfig loads configuration from a file, falling back to defaults for a
// missing file. A file that exists but does not parse is an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	return cfg, nil
}

// ConfigPath resolves the effective config file path: an explicit path wins,
// then the EnvConfigPath environment variable, then the default location.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath()
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "themecast", "config.json")
}

// DefaultUserThemesDir returns the user theme directory scanned in addition
// to the configured ones
func DefaultUserThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "themecast", "themes")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
