package config

import (
	"fmt"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// Validate checks structural invariants of a loaded configuration: every
// selection key must be a known category and no category may list the same
// module id twice.
func Validate(cfg *Config) error {
	for category, ids := range cfg.Selection.Modules {
		if !validCategory(category) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, category)
		}
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if id == "" {
				return fmt.Errorf("%w: empty module id under %q", ErrInvalidConfig, category)
			}
			if seen[id] {
				return fmt.Errorf("%w: duplicate module id %q under %q", ErrInvalidConfig, id, category)
			}
			seen[id] = true
		}
	}

	seen := make(map[string]bool, len(cfg.Selection.Bundles))
	for _, id := range cfg.Selection.Bundles {
		if seen[id] {
			return fmt.Errorf("%w: duplicate bundle id %q", ErrInvalidConfig, id)
		}
		seen[id] = true
	}

	return nil
}

func validCategory(c catalog.Category) bool {
	for _, known := range catalog.Categories() {
		if c == known {
			return true
		}
	}
	return false
}
