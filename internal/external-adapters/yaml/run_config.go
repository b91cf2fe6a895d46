// Package yaml provides YAML-based run configuration parsing.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlRunConfig represents the raw YAML structure
type yamlRunConfig struct {
	Rclone   string `yaml:"rclone"`
	Remote   string `yaml:"remote"`
	Dest     string `yaml:"dest"`
	File     string `yaml:"file"`
	Parallel int    `yaml:"parallel"`
	LogFile  string `yaml:"log_file"`
}

// RunConfig holds defaults for the check command loaded from a config file.
// Zero values mean "not set"; flags given on the command line always win.
type RunConfig struct {
	Rclone   string
	Remote   string
	Dest     string
	File     string
	Parallel int
	LogFile  string
}

// ConfigParser parses YAML run-config files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML config file into a RunConfig
func (p *ConfigParser) ParseFile(path string) (*RunConfig, error) {
	//nolint:gosec // G304: user explicitly provides the config file path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return p.Parse(data)
}

// Parse parses YAML bytes into a RunConfig
func (p *ConfigParser) Parse(data []byte) (*RunConfig, error) {
	var raw yamlRunConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Parallel < 0 {
		return nil, fmt.Errorf("parallel must not be negative, got %d", raw.Parallel)
	}

	return &RunConfig{
		Rclone:   raw.Rclone,
		Remote:   raw.Remote,
		Dest:     raw.Dest,
		File:     raw.File,
		Parallel: raw.Parallel,
		LogFile:  raw.LogFile,
	}, nil
}
