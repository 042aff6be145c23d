// Package config handles global citemd configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/citemd/config.yml.
// Every field is optional; commands fall back to their own defaults.
type Config struct {
	BibPath   string `yaml:"bib_path,omitempty"`   // Default bibliography file
	Style     string `yaml:"style,omitempty"`      // Default citation style
	IndexPath string `yaml:"index_path,omitempty"` // SQLite index location
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citemd"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// IndexFile is the default SQLite index file name.
	IndexFile = "index.db"

	// Environment overrides, checked before the config file.
	EnvBibPath = "CITEMD_BIB"
	EnvStyle   = "CITEMD_STYLE"
)

// Path returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/citemd/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the global configuration file. Returns an empty config (not
// an error) if the file doesn't exist.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.BibPath = ExpandTilde(cfg.BibPath)
	cfg.IndexPath = ExpandTilde(cfg.IndexPath)
	return &cfg, nil
}

// Save writes the configuration to the global config file, creating the
// directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultBibPath resolves the bibliography path to use when none is given
// on the command line: the CITEMD_BIB environment variable first, then the
// config file. Empty means unconfigured.
func (c *Config) DefaultBibPath() string {
	if env := os.Getenv(EnvBibPath); env != "" {
		return ExpandTilde(env)
	}
	return c.BibPath
}

// DefaultStyle resolves the citation style to use when none is given on
// the command line: CITEMD_STYLE first, then the config file, then
// "numbered".
func (c *Config) DefaultStyle() string {
	if env := os.Getenv(EnvStyle); env != "" {
		return env
	}
	if c.Style != "" {
		return c.Style
	}
	return "numbered"
}

// ResolveIndexPath returns the SQLite index location: the configured
// index_path if set, otherwise $XDG_CACHE_HOME/citemd/index.db.
func (c *Config) ResolveIndexPath() string {
	if c.IndexPath != "" {
		return c.IndexPath
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return IndexFile
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, ConfigDir, IndexFile)
}

// ExpandTilde expands a leading "~/" to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
