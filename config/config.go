// Package config ties together all other application configuration types
// and handles reading and writing them as a single TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kay-ou/SimTradeLab-sub001/execution"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/matching"
	"github.com/kay-ou/SimTradeLab-sub001/metrics"
)

// Config ties together all other application configuration types.
type Config struct {
	Logging   logging.Config   `group:"Logging" namespace:"logging"`
	Execution execution.Config `group:"Execution" namespace:"execution"`
	Matching  matching.Config  `group:"Matching" namespace:"matching"`
	Metrics   metrics.Config   `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the defaults of every package configuration.
func NewDefaultConfig() Config {
	return Config{
		Logging:   logging.NewDefaultConfig(),
		Execution: execution.NewDefaultConfig(),
		Matching:  matching.NewDefaultConfig(),
		Metrics:   metrics.NewDefaultConfig(),
	}
}

// Read loads the configuration file from the root path, on top of the
// defaults so a partial file is valid.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write stores the configuration as TOML under the root path, creating the
// directory when needed.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(rootPath, configFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
