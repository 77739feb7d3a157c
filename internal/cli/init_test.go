package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/pkg/catalog"
)

func TestInitCommand(t *testing.T) {
	t.Run("installs_bundle_and_flag_modules", func(t *testing.T) {
		d := testDeps(t)
		root := t.TempDir()

		out, err := runCLI(t, "init", root,
			"--name", "demo",
			"--bundle", "quality-suite",
			"--agents", "tech-lead",
			"--skills", "testing",
		)
		if err != nil {
			t.Fatalf("init error: %v\n%s", err, out)
		}

		// Bundle modules, flag modules, and transitive dependencies.
		for _, rel := range []string{
			".claude/agents/qa-engineer.md",
			".claude/agents/tech-lead.md",
			".claude/docs/testing-guide.md",
			".claude/skills/tdd-workflow.md", // tag "testing"
			".claude/skills/code-review.md",  // dependency of tdd-workflow
			"CLAUDE.md",
			".claude/settings.json",
		} {
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
				t.Errorf("expected %s: %v", rel, err)
			}
		}

		cfg, err := d.Config.Load(root)
		if err != nil {
			t.Fatalf("reload config: %v", err)
		}
		if cfg.Project.Name != "demo" {
			t.Errorf("Project.Name = %q", cfg.Project.Name)
		}
		if len(cfg.Selection.Bundles) != 1 || cfg.Selection.Bundles[0] != "quality-suite" {
			t.Errorf("Bundles = %v", cfg.Selection.Bundles)
		}
		for _, id := range []string{"qa-engineer", "tech-lead"} {
			if !cfg.Selection.Installed(catalog.CategoryAgents, id) {
				t.Errorf("agent %s not recorded", id)
			}
		}
		if !cfg.Selection.Installed(catalog.CategorySkills, "code-review") {
			t.Error("transitive dependency code-review not recorded")
		}
	})

	t.Run("unresolved_identifier_warns_but_succeeds", func(t *testing.T) {
		testDeps(t)
		root := t.TempDir()

		out, err := runCLI(t, "init", root, "--agents", "tech-lead,no-such-thing")
		if err != nil {
			t.Fatalf("init error: %v\n%s", err, out)
		}
		if !strings.Contains(out, "no-such-thing") {
			t.Errorf("expected warning about unresolved identifier:\n%s", out)
		}
		if _, err := os.Stat(filepath.Join(root, ".claude", "agents", "tech-lead.md")); err != nil {
			t.Errorf("resolved module not installed: %v", err)
		}
	})

	t.Run("second_init_requires_force", func(t *testing.T) {
		testDeps(t)
		root := t.TempDir()

		if out, err := runCLI(t, "init", root, "--agents", "tech-lead"); err != nil {
			t.Fatalf("first init: %v\n%s", err, out)
		}
		if _, err := runCLI(t, "init", root); err == nil {
			t.Fatal("second init without --force succeeded")
		}
		if out, err := runCLI(t, "init", root, "--force", "--agents", "core"); err != nil {
			t.Fatalf("init --force: %v\n%s", err, out)
		}
	})

	t.Run("dependency_order_is_recorded", func(t *testing.T) {
		d := testDeps(t)
		root := t.TempDir()

		if out, err := runCLI(t, "init", root, "--agents", "code-reviewer"); err != nil {
			t.Fatalf("init: %v\n%s", err, out)
		}

		cfg, err := d.Config.Load(root)
		if err != nil {
			t.Fatal(err)
		}
		agents := cfg.Selection.Modules[catalog.CategoryAgents]
		if len(agents) != 2 || agents[0] != "qa-engineer" || agents[1] != "code-reviewer" {
			t.Errorf("agents = %v, want dependency first", agents)
		}
	})
}

func TestParseCategory(t *testing.T) {
	t.Run("accepts_plural_and_singular", func(t *testing.T) {
		for arg, want := range map[string]catalog.Category{
			"agents": catalog.CategoryAgents,
			"agent":  catalog.CategoryAgents,
			"Skill":  catalog.CategorySkills,
			"docs":   catalog.CategoryDocs,
		} {
			got, err := parseCategory(arg)
			if err != nil || got != want {
				t.Errorf("parseCategory(%q) = %v, %v", arg, got, err)
			}
		}
	})

	t.Run("rejects_unknown", func(t *testing.T) {
		if _, err := parseCategory("plugins"); err == nil {
			t.Error("expected error for unknown category")
		}
	})
}

func TestConfigPathRecorded(t *testing.T) {
	t.Run("init_mentions_config_location", func(t *testing.T) {
		testDeps(t)
		root := t.TempDir()

		out, err := runCLI(t, "init", root, "--agents", "tech-lead")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, config.ConfigPath(root)) {
			t.Errorf("output does not mention config path:\n%s", out)
		}
	})
}
