package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// StackKitDir is the directory under the project root that holds the
	// configuration file.
	StackKitDir = ".stackkit"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"
)

// ConfigPath returns the configuration file path for a project root.
func ConfigPath(projectRoot string) string {
	return filepath.Join(filepath.Clean(projectRoot), StackKitDir, ConfigFileName)
}

// Loader reads configuration files from disk.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path. A missing file is not an
// error: defaults are returned with found=false so callers can distinguish
// "never initialized" from "initialized with an empty selection".
func (l *Loader) Load(path string) (cfg *Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg = DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}
