package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/ui"
	"github.com/stackkit/stackkit/pkg/catalog"
)

// testDeps installs a fixture dependency set with a small catalog, an
// in-memory template tree, and forced headless UI.
func testDeps(t *testing.T) *Dependencies {
	t.Helper()

	cat := catalog.New()
	cat.Modules[catalog.CategoryAgents] = []catalog.Module{
		{ID: "tech-lead", Category: catalog.CategoryAgents, Name: "Tech Lead", Description: "Planning", Tags: []string{"core"}},
		{ID: "qa-engineer", Category: catalog.CategoryAgents, Name: "QA Engineer", Description: "Testing", Tags: []string{"quality", "testing"}},
		{ID: "code-reviewer", Category: catalog.CategoryAgents, Name: "Code Reviewer", Description: "Review", Tags: []string{"quality"}, Dependencies: []string{"qa-engineer"}},
	}
	cat.Modules[catalog.CategorySkills] = []catalog.Module{
		{ID: "code-review", Category: catalog.CategorySkills, Name: "Code Review", Tags: []string{"quality"}},
		{ID: "tdd-workflow", Category: catalog.CategorySkills, Name: "TDD Workflow", Tags: []string{"testing"}, Dependencies: []string{"code-review"}},
	}
	cat.Modules[catalog.CategoryDocs] = []catalog.Module{
		{ID: "testing-guide", Category: catalog.CategoryDocs, Name: "Testing Guide", Tags: []string{"testing"}},
	}
	cat.Bundles = []catalog.Bundle{
		{
			ID: "quality-suite", Name: "Quality Suite", Description: "Review and testing setup",
			Modules: []catalog.BundleModule{
				{ID: "qa-engineer", Category: catalog.CategoryAgents},
				{ID: "testing-guide", Category: catalog.CategoryDocs, RequiredBy: []string{"qa-engineer"}},
			},
		},
	}

	assets := fstest.MapFS{
		"agents/tech-lead.md":     &fstest.MapFile{Data: []byte("---\nid: tech-lead\n---\n# Tech Lead\n")},
		"agents/qa-engineer.md":   &fstest.MapFile{Data: []byte("---\nid: qa-engineer\n---\n# QA\n")},
		"agents/code-reviewer.md": &fstest.MapFile{Data: []byte("---\nid: code-reviewer\n---\n# Reviewer\n")},
		"skills/code-review.md":   &fstest.MapFile{Data: []byte("---\nid: code-review\n---\n# Review skill\n")},
		"skills/tdd-workflow.md":  &fstest.MapFile{Data: []byte("---\nid: tdd-workflow\n---\n# TDD\n")},
		"docs/testing-guide.md":   &fstest.MapFile{Data: []byte("---\nid: testing-guide\n---\n# Guide\n")},
		"CLAUDE.md.tmpl":          &fstest.MapFile{Data: []byte("# {{.ProjectName}}\n")},
		"settings.json.tmpl":      &fstest.MapFile{Data: []byte(`{"project": "{{jsonEscape .ProjectName}}"}`)},
	}

	theme := ui.NewTheme(true)
	headless := ui.NewHeadlessManager()
	headless.ForceHeadless(true)

	d := &Dependencies{
		Catalog:  cat,
		Config:   config.NewManager(),
		Theme:    theme,
		Headless: headless,
		Progress: ui.NewProgress(theme, headless),
		Assets:   assets,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	prev := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return d
}

// runCLI executes the root command with the given args and captures output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults so executions do not leak into each
// other through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
