package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fwojciec/sigedit"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG config and data directories.
const AppName = "sigedit"

// DefaultConcurrency bounds batch validation when nothing else is set.
const DefaultConcurrency = 4

// Config is the optional YAML configuration file.
type Config struct {
	DB             string `yaml:"db"`
	ImageFallback  string `yaml:"image_fallback"`
	MaxImageWidth  int    `yaml:"max_image_width"`
	MaxImageHeight int    `yaml:"max_image_height"`
	TreeMaxBytes   int    `yaml:"tree_max_bytes"`
	Concurrency    int    `yaml:"concurrency"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/sigedit/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// LoadConfig reads the config file at path. An empty path means the default
// location, which may be absent. An explicitly given path must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if explicit {
			return nil, sigedit.Errorf(sigedit.ENOTFOUND, "config file %s not found", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, sigedit.Errorf(sigedit.EINVALID, "invalid config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	if _, err := sigedit.ParseImageFallback(c.ImageFallback); err != nil {
		return err
	}
	if c.MaxImageWidth < 0 || c.MaxImageHeight < 0 {
		return sigedit.Errorf(sigedit.EINVALID, "max image dimensions must not be negative")
	}
	if c.TreeMaxBytes < 0 {
		return sigedit.Errorf(sigedit.EINVALID, "tree_max_bytes must not be negative")
	}
	if c.Concurrency < 0 {
		return sigedit.Errorf(sigedit.EINVALID, "concurrency must not be negative")
	}
	return nil
}

// DBPath returns the database path: flag, then config file, then
// $XDG_DATA_HOME/sigedit/sigedit.db.
func (c *Config) DBPath(flag string) string {
	if flag != "" {
		return flag
	}
	if c.DB != "" {
		return c.DB
	}
	return defaultDBPath()
}

// ConcurrencyLimit returns the flag value, then the config value, then
// DefaultConcurrency.
func (c *Config) ConcurrencyLimit(flag int) int {
	if flag > 0 {
		return flag
	}
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func defaultDBPath() string {
	dir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return AppName + ".db"
	}
	return filepath.Join(dir, AppName+".db")
}
