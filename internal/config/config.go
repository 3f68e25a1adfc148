// Package config loads the optional YAML configuration for leakgate.
// Precedence is CLI flag > repo-local file > global file; fields are pointers
// so an absent key is distinguishable from a zero value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape.
type FileConfig struct {
	Include  *string `yaml:"include"`
	Exclude  *string `yaml:"exclude"`
	MaxBytes *int64  `yaml:"max_bytes"`
	NoColor  *bool   `yaml:"no_color"`

	// ExtraPatterns are appended to the built-in registry. Each must compile;
	// a malformed pattern aborts startup before any traversal begins.
	ExtraPatterns []ExtraPattern `yaml:"extra_patterns"`

	// ExtraAllowlist entries are appended to the built-in allowlist.
	ExtraAllowlist []string `yaml:"extra_allowlist"`
}

// ExtraPattern is a user-supplied detection rule.
type ExtraPattern struct {
	ID       string `yaml:"id"`
	Severity string `yaml:"severity"`
	Pattern  string `yaml:"pattern"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches repoRoot for a repo-local config file.
func LoadLocal(repoRoot string) (FileConfig, error) {
	for _, name := range []string{".leakgate.yml", ".leakgate.yaml", "leakgate.yml", "leakgate.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG_CONFIG_HOME or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	p := filepath.Join(base, "leakgate", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, errors.New("no global config")
}
