// Package config loads the layered filesystem configuration from a YAML
// file and builds the provider chain it describes.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/layerfs/layerfs/fs"
)

// Layer kinds.
const (
	KindDir     = "dir"
	KindArchive = "archive"
)

type Config struct {
	// Layers in priority order: the first layer that resolves a path
	// wins.
	Layers []*Layer `yaml:"layers"`
	Log    *Log     `yaml:"log"`
}

// Layer describes one provider in the chain.
type Layer struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

type Log struct {
	Debug      bool   `yaml:"debug"`
	Path       string `yaml:"path"`
	MaxBackups int    `yaml:"max_backups"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxAge     int    `yaml:"max_age"`  // days
}

// DefaultConfig returns a configuration with sensible defaults and no
// layers.
func DefaultConfig() *Config {
	return &Config{
		Log: &Log{
			MaxBackups: 2,
			MaxSize:    50,
			MaxAge:     30,
		},
	}
}

// Load reads a configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// An explicit empty `log:` section unmarshals to a nil pointer,
	// wiping the defaults.
	if cfg.Log == nil {
		cfg.Log = DefaultConfig().Log
	}

	return cfg, nil
}

// Providers builds the providers described by the configuration, in layer
// order.
func (c *Config) Providers() ([]fs.Provider, error) {
	ps := make([]fs.Provider, 0, len(c.Layers))

	for _, l := range c.Layers {
		switch l.Kind {
		case KindDir:
			ps = append(ps, fs.NewDir(l.Path))
		case KindArchive:
			ps = append(ps, fs.NewArchive(l.Path))
		default:
			return nil, fmt.Errorf("unknown layer kind %q", l.Kind)
		}
	}

	return ps, nil
}

// Filesystem builds the provider chain described by the configuration.
func (c *Config) Filesystem() (*fs.FS, error) {
	ps, err := c.Providers()
	if err != nil {
		return nil, err
	}

	v := fs.New()
	for _, p := range ps {
		v.AddProvider(p)
	}

	return v, nil
}
