// Package config loads and persists the StackKit project configuration.
// The configuration lives in .stackkit/config.yaml under the project root
// and records which bundles and modules are installed, never how they were
// selected (tags resolve to module ids before anything is written).
package config

import (
	"github.com/stackkit/stackkit/pkg/catalog"
)

// Config is the root configuration aggregate persisted to
// .stackkit/config.yaml.
type Config struct {
	Project   ProjectConfig   `yaml:"project"`
	Selection SelectionConfig `yaml:"selection"`
	Settings  SettingsConfig  `yaml:"settings"`
}

// ProjectConfig records project identity and provenance.
type ProjectConfig struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`        // stackkit version that wrote the file
	InitializedAt string `yaml:"initialized_at"` // ISO 8601
}

// SelectionConfig records the installed selection as concrete module ids.
type SelectionConfig struct {
	Bundles []string                      `yaml:"bundles,omitempty"`
	Modules map[catalog.Category][]string `yaml:"modules"`
}

// SettingsConfig holds CLI behavior toggles.
type SettingsConfig struct {
	NoColor        bool `yaml:"no_color"`
	NonInteractive bool `yaml:"non_interactive"`
}

// Installed reports whether the module id is recorded for the category.
func (s SelectionConfig) Installed(category catalog.Category, id string) bool {
	for _, have := range s.Modules[category] {
		if have == id {
			return true
		}
	}
	return false
}

// Add records module ids for a category, skipping ids already present.
// Returns the ids that were actually added.
func (s *SelectionConfig) Add(category catalog.Category, ids ...string) []string {
	if s.Modules == nil {
		s.Modules = make(map[catalog.Category][]string)
	}
	var added []string
	for _, id := range ids {
		if s.Installed(category, id) {
			continue
		}
		s.Modules[category] = append(s.Modules[category], id)
		added = append(added, id)
	}
	return added
}

// Remove drops a module id from a category. Returns true if it was present.
func (s *SelectionConfig) Remove(category catalog.Category, id string) bool {
	ids := s.Modules[category]
	for i, have := range ids {
		if have == id {
			s.Modules[category] = append(ids[:i:i], ids[i+1:]...)
			return true
		}
	}
	return false
}
