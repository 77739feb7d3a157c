package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// managerState represents the lifecycle state of the Manager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// Manager provides thread-safe access to the project configuration.
// It must be initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	root   string
	found  bool
	state  managerState
	loader *Loader
}

// NewManager creates a Manager in uninitialized state.
func NewManager() *Manager {
	return &Manager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads the configuration from the project root's .stackkit/ directory.
// The STACKKIT_CONFIG_DIR environment variable overrides the directory.
// A missing file yields defaults; use ProjectInitialized to tell the cases
// apart.
func (m *Manager) Load(projectRoot string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := ConfigPath(projectRoot)
	if envDir := os.Getenv("STACKKIT_CONFIG_DIR"); envDir != "" {
		path = filepath.Join(filepath.Clean(envDir), ConfigFileName)
	}

	cfg, found, err := m.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyEnvOverrides(cfg)

	m.config = cfg
	m.root = projectRoot
	m.found = found
	m.state = stateInitialized

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ProjectInitialized reports whether a configuration file existed on disk
// at Load() time or has been written since.
func (m *Manager) ProjectInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.found
}

// Update applies fn to the in-memory configuration under the write lock.
// Returns ErrNotInitialized if Load() has not been called.
func (m *Manager) Update(fn func(*Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}
	fn(m.config)
	return nil
}

// Save persists the current configuration to disk atomically using a temp
// file and os.Rename. Returns ErrNotInitialized if Load() has not been
// called.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}
	if err := Validate(m.config); err != nil {
		return err
	}

	path := ConfigPath(m.root)
	if envDir := os.Getenv("STACKKIT_CONFIG_DIR"); envDir != "" {
		path = filepath.Join(filepath.Clean(envDir), ConfigFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := atomicWrite(path, data); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	m.found = true
	return nil
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables have higher priority than file values.
func applyEnvOverrides(cfg *Config) {
	if noColor := os.Getenv("STACKKIT_NO_COLOR"); noColor == "true" || noColor == "1" {
		cfg.Settings.NoColor = true
	}
	if nonInteractive := os.Getenv("STACKKIT_NON_INTERACTIVE"); nonInteractive == "true" || nonInteractive == "1" {
		cfg.Settings.NonInteractive = true
	}
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".stackkit-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
