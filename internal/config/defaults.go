package config

import "github.com/stackkit/stackkit/pkg/catalog"

// DefaultConfig returns the compiled-in default configuration used when no
// config file exists yet. The selection starts empty for every category so
// commands can append without nil checks.
func DefaultConfig() *Config {
	modules := make(map[catalog.Category][]string, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		modules[c] = nil
	}
	return &Config{
		Selection: SelectionConfig{Modules: modules},
	}
}
