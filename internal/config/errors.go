package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrNotInitialized indicates the manager is used before Load().
	ErrNotInitialized = errors.New("config: manager not initialized")

	// ErrNoProject indicates no .stackkit/config.yaml exists under the
	// project root, i.e. stackkit init has not been run.
	ErrNoProject = errors.New("config: project not initialized")

	// ErrInvalidConfig indicates the configuration file failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
