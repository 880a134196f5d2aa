package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/escapetime/internal/orbit"
)

const (
	DefaultName    = "lpsc"
	DefaultCRe     = orbit.DefaultCRe
	DefaultCIm     = orbit.DefaultCIm
	DefaultMaxIter = orbit.DefaultMaxIter
	DefaultRadius  = orbit.DefaultRadius
)

type Config struct {
	Name    string  `yaml:"name"`
	CRe     float64 `yaml:"c_re"`
	CIm     float64 `yaml:"c_im"`
	MaxIter int     `yaml:"max_iter"`
	Radius  float64 `yaml:"radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:    DefaultName,
		CRe:     DefaultCRe,
		CIm:     DefaultCIm,
		MaxIter: DefaultMaxIter,
		Radius:  DefaultRadius,
	}
}

// Load reads a YAML file on top of the defaults, so omitted keys keep their
// compiled-in values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() orbit.Params {
	return orbit.Params{
		CRe:     c.CRe,
		CIm:     c.CIm,
		MaxIter: c.MaxIter,
		Radius:  c.Radius,
	}
}

// Validate checks the orbit parameters and that Name is a single path
// element, since saved runs are stored under <data>/<name>_<time>.
func (c *Config) Validate() error {
	if c.Name == "" || c.Name == "." || c.Name == ".." ||
		strings.ContainsAny(c.Name, `/\`) || filepath.Base(c.Name) != c.Name {
		return fmt.Errorf("name %q: %w", c.Name, orbit.ErrParameterBounds)
	}
	return c.Params().Validate()
}
