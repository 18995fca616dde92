package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Theme is the color theme to use (mocha, macchiato, frappe, latte)
	Theme string `yaml:"theme"`

	// DataDir is where the session log and debug log live
	DataDir string `yaml:"data_dir"`

	// TargetMinutes is the steep target shown as a progress bar while
	// timing; 0 disables the bar
	TargetMinutes float64 `yaml:"target_minutes"`

	// Recent is how many recent sessions the timer view summarizes
	Recent int `yaml:"recent"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:   "mocha",
		DataDir: defaultDataDir(),
		Recent:  10,
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "steeper")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "steeper")
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.Recent < 0 {
		cfg.Recent = 0
	}
	if cfg.TargetMinutes < 0 {
		cfg.TargetMinutes = 0
	}

	return cfg, nil
}

// FindDefaultPath returns the first standard config location that
// exists, or empty when none does. Checked in order: current dir,
// ~/.config/steeper/, XDG_CONFIG_HOME.
func FindDefaultPath() string {
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "steeper", "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "steeper", "config.yaml"))
	}

	for _, path := range paths {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil {
			return cleanPath
		}
	}

	return ""
}
