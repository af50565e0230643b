// Package config loads the showcase configuration from YAML,
// applying defaults for anything the file leaves out.
package config

import (
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// AdminConfig seeds the /admin account. Leave both fields empty to
// run the showcase without an admin area.
type AdminConfig struct {
	Username string `yaml:"username" validate:"omitempty,admin_name"`
	Password string `yaml:"password" validate:"omitempty,min=8"`
}

// Config is the full showcase configuration document
type Config struct {
	// Address is the listen address, e.g. ":8080" or "127.0.0.1:9000"
	Address string `yaml:"address" validate:"omitempty,hostname_port"`

	// DataDir holds the DuckDB file; empty means in-memory only
	DataDir string `yaml:"data_dir"`

	// Scheme selects the default color scheme for rendered pages
	Scheme string `yaml:"scheme" validate:"omitempty,oneof=light dark system"`

	// Title appears in the page header and <title>
	Title string `yaml:"title" validate:"omitempty,max=100"`

	Verbose bool        `yaml:"verbose"`
	Admin   AdminConfig `yaml:"admin"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Address: ":8080",
		Scheme:  "system",
		Title:   "Plume UI",
	}
}

// Load reads a configuration file over the defaults and validates
// the result. A missing file is not an error; defaults are returned
// instead so `plume serve` works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Config file not found, using defaults", "path", path)
			return &cfg, nil
		}
		return nil, serr.Wrap(err, "failed to read config file "+path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, serr.Wrap(err, "failed to parse config file "+path)
	}

	cfg.applyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills fields an explicit file left empty
func (c *Config) applyDefaults() {
	def := Default()
	if c.Address == "" {
		c.Address = def.Address
	}
	if c.Scheme == "" {
		c.Scheme = def.Scheme
	}
	if c.Title == "" {
		c.Title = def.Title
	}
}
