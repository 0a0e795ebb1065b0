// Package config provides configuration parsing for sys-analyzer.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional sys-analyzer configuration file. Every field has a
// default, so running without a file is the normal case.
type Config struct {
	// Display holds TUI rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Report holds report output settings.
	Report ReportConfig `yaml:"report"`

	// Logging holds log output settings.
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds TUI rendering settings.
type DisplayConfig struct {
	// Theme is the color theme: "minimal", "full", or "monitoring".
	Theme string `yaml:"theme"`
	// ProcessLimit caps the process pane. Zero lists every process.
	ProcessLimit int `yaml:"process_limit"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	// Dir is where HTML reports are written.
	Dir string `yaml:"dir"`
}

// LoggingConfig holds log output settings. The TUI owns the terminal, so
// logs only go to a file.
type LoggingConfig struct {
	// File is the log file path. Empty discards logs.
	File string `yaml:"file"`
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Theme: "monitoring",
		},
		Report: ReportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.config/sys-analyzer/config.yaml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sys-analyzer", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return config, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	validThemes := map[string]bool{"minimal": true, "full": true, "monitoring": true}
	if !validThemes[c.Display.Theme] {
		return fmt.Errorf("display.theme must be 'minimal', 'full', or 'monitoring', got %q", c.Display.Theme)
	}
	if c.Display.ProcessLimit < 0 {
		return fmt.Errorf("display.process_limit must be non-negative, got %d", c.Display.ProcessLimit)
	}
	if c.Report.Dir == "" {
		return fmt.Errorf("report.dir is required")
	}
	if _, ok := logLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// LogLevel returns the slog level for Logging.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	if l, ok := logLevels[c.Logging.Level]; ok {
		return l
	}
	return slog.LevelInfo
}
