package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo server settings.
type Config struct {
	// Addr is the listen address, host optional.
	Addr string `yaml:"addr"`

	// ViewPath is the directory searched for template overrides before
	// the bundled copies.
	ViewPath string `yaml:"view_path"`

	// CSRFSecret seeds the form tokens. Leave it empty to mint one per
	// start, which logs everyone out of open forms on restart.
	CSRFSecret string `yaml:"csrf_secret"`

	// Dev reloads templates on change and allows plain http cookies.
	Dev bool `yaml:"dev"`
}

// DefaultConfig returns the settings the demo runs with when no config
// file exists.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		ViewPath: "views",
	}
}

// LoadConfig reads the yaml config at path, falling back to the defaults
// when the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings a misconfigured file gets wrong first.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	return nil
}
