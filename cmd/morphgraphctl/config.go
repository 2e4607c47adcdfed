package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the morphgraphctl configuration file format: how verbosely
// to log, and whether to check edge labels. HostFile is parsed but no
// subcommand reads it; host graphs always come from the command-line
// arguments.
type Config struct {
	HostFile  string `yaml:"host_file"`
	LogLevel  string `yaml:"log_level"`
	EdgeCheck bool   `yaml:"check_edge_labels"`
}

// loadConfig reads and parses a YAML config file. A missing path is
// not an error: callers fall back to flag defaults via an empty
// Config.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("morphgraphctl: reading config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("morphgraphctl: parsing config %q: %w", path, err)
	}

	return cfg, nil
}
