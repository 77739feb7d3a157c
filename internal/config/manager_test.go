package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stackkit/stackkit/pkg/catalog"
)

func TestManagerLoad(t *testing.T) {
	t.Run("missing_file_yields_defaults", func(t *testing.T) {
		m := NewManager()
		cfg, err := m.Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if m.ProjectInitialized() {
			t.Error("ProjectInitialized = true for missing file")
		}
		if cfg.Selection.Modules == nil {
			t.Error("default selection map is nil")
		}
		for _, c := range catalog.Categories() {
			if _, ok := cfg.Selection.Modules[c]; !ok {
				t.Errorf("default selection missing category %q", c)
			}
		}
	})

	t.Run("reads_existing_file", func(t *testing.T) {
		root := t.TempDir()
		writeConfigFile(t, root, `
project:
  name: demo
selection:
  bundles: [react-stack]
  modules:
    agents: [tech-lead]
    skills: [code-review, react-patterns]
`)

		m := NewManager()
		cfg, err := m.Load(root)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if !m.ProjectInitialized() {
			t.Error("ProjectInitialized = false for existing file")
		}
		if cfg.Project.Name != "demo" {
			t.Errorf("Project.Name = %q", cfg.Project.Name)
		}
		if len(cfg.Selection.Bundles) != 1 || cfg.Selection.Bundles[0] != "react-stack" {
			t.Errorf("Bundles = %v", cfg.Selection.Bundles)
		}
		if !cfg.Selection.Installed(catalog.CategorySkills, "react-patterns") {
			t.Error("expected react-patterns to be installed")
		}
	})

	t.Run("invalid_yaml_is_an_error", func(t *testing.T) {
		root := t.TempDir()
		writeConfigFile(t, root, "selection: [not a mapping")

		m := NewManager()
		if _, err := m.Load(root); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got: %v", err)
		}
	})

	t.Run("duplicate_module_id_rejected", func(t *testing.T) {
		root := t.TempDir()
		writeConfigFile(t, root, `
selection:
  modules:
    agents: [tech-lead, tech-lead]
`)

		m := NewManager()
		if _, err := m.Load(root); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got: %v", err)
		}
	})

	t.Run("env_override_sets_no_color", func(t *testing.T) {
		t.Setenv("STACKKIT_NO_COLOR", "1")

		m := NewManager()
		cfg, err := m.Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if !cfg.Settings.NoColor {
			t.Error("NoColor not applied from environment")
		}
	})
}

func TestManagerSave(t *testing.T) {
	t.Run("save_before_load_fails", func(t *testing.T) {
		m := NewManager()
		if err := m.Save(); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got: %v", err)
		}
	})

	t.Run("roundtrip_preserves_selection", func(t *testing.T) {
		root := t.TempDir()

		m := NewManager()
		if _, err := m.Load(root); err != nil {
			t.Fatalf("Load error: %v", err)
		}
		err := m.Update(func(cfg *Config) {
			cfg.Project.Name = "demo"
			cfg.Selection.Bundles = []string{"api-service"}
			cfg.Selection.Add(catalog.CategoryAgents, "backend-dev")
			cfg.Selection.Add(catalog.CategorySkills, "api-design")
		})
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if err := m.Save(); err != nil {
			t.Fatalf("Save error: %v", err)
		}
		if !m.ProjectInitialized() {
			t.Error("ProjectInitialized = false after Save")
		}

		reloaded := NewManager()
		cfg, err := reloaded.Load(root)
		if err != nil {
			t.Fatalf("reload error: %v", err)
		}
		if cfg.Project.Name != "demo" {
			t.Errorf("Project.Name = %q", cfg.Project.Name)
		}
		if !cfg.Selection.Installed(catalog.CategoryAgents, "backend-dev") {
			t.Error("backend-dev missing after roundtrip")
		}
		if !cfg.Selection.Installed(catalog.CategorySkills, "api-design") {
			t.Error("api-design missing after roundtrip")
		}
	})

	t.Run("save_leaves_no_temp_files", func(t *testing.T) {
		root := t.TempDir()
		m := NewManager()
		if _, err := m.Load(root); err != nil {
			t.Fatal(err)
		}
		if err := m.Save(); err != nil {
			t.Fatalf("Save error: %v", err)
		}

		entries, err := os.ReadDir(filepath.Join(root, StackKitDir))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != ConfigFileName {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("config dir contents = %v", names)
		}
	})
}

func TestSelectionConfig(t *testing.T) {
	t.Run("add_skips_duplicates", func(t *testing.T) {
		var s SelectionConfig
		added := s.Add(catalog.CategoryAgents, "a", "b")
		if len(added) != 2 {
			t.Errorf("added = %v", added)
		}
		added = s.Add(catalog.CategoryAgents, "b", "c")
		if len(added) != 1 || added[0] != "c" {
			t.Errorf("second add = %v, want only c", added)
		}
	})

	t.Run("remove_reports_presence", func(t *testing.T) {
		var s SelectionConfig
		s.Add(catalog.CategorySkills, "x", "y")

		if !s.Remove(catalog.CategorySkills, "x") {
			t.Error("Remove of present id returned false")
		}
		if s.Remove(catalog.CategorySkills, "x") {
			t.Error("Remove of absent id returned true")
		}
		if s.Installed(catalog.CategorySkills, "x") {
			t.Error("x still installed after Remove")
		}
		if !s.Installed(catalog.CategorySkills, "y") {
			t.Error("y lost by removing x")
		}
	})
}

func writeConfigFile(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, StackKitDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
