// Package config provides configuration types, defaults, and persistence
// for siga.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"siga/internal/log"
)

// Config holds all configuration options for siga.
type Config struct {
	// DataDir is where the CSV collections and JSON exports live.
	DataDir string `mapstructure:"data_dir"`

	// CreditLimit is the ceiling on a student's total registered
	// credit weight.
	CreditLimit int `mapstructure:"credit_limit"`

	// AutoReload reloads the store when the data files change on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowCounts    bool   `mapstructure:"show_counts"` // Entity counts in the main menu
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light" for the help view
}

// ThemeConfig holds the color tokens users can override.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // hex color e.g. "#7D56F4"
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		DataDir:     "data",
		CreditLimit: 20,
		AutoReload:  true,
		UI: UIConfig{
			ShowCounts:    true,
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#696969",
			Error:     "#FF6B6B",
			Success:   "#73F59F",
		},
	}
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# siga configuration

# Directory holding the CSV data files and JSON exports.
data_dir: data

# Maximum total credit weight a student may hold in concurrent
# registrations.
credit_limit: 20

# Reload the store automatically when the data files change on disk.
auto_reload: true

ui:
  # Show entity counts next to the main menu sections.
  show_counts: true
  show_status_bar: true
  # Style for the help view: "dark" or "light".
  markdown_style: dark

theme:
  highlight: "#7D56F4"
  subtle: "#696969"
  error: "#FF6B6B"
  success: "#73F59F"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
