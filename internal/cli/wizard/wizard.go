package wizard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/stackkit/stackkit/internal/resolve"
	"github.com/stackkit/stackkit/pkg/catalog"
)

// Run executes the init wizard against the given catalog. Each step runs as
// its own huh.Form so later steps can depend on earlier answers (bundle
// choices preselect module checkboxes).
func Run(cat *catalog.Catalog, projectRoot string) (*Result, error) {
	result := &Result{Modules: make(map[catalog.Category][]string)}
	theme := huh.ThemeCharm()

	result.ProjectName = defaultProjectName(projectRoot)
	nameForm := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Description("Used in CLAUDE.md and .stackkit/config.yaml.").
			Validate(requireNonEmpty("project name")).
			Value(&result.ProjectName),
		huh.NewInput().
			Title("Your name").
			Description("Recorded as the project owner. Press Enter to skip.").
			Value(&result.UserName),
	)).WithTheme(theme)
	if err := runForm(nameForm); err != nil {
		return nil, err
	}

	if len(cat.Bundles) > 0 {
		bundleForm := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Bundles").
				Description("Curated module sets. Individual modules come next.").
				Options(bundleOptions(cat)...).
				Value(&result.Bundles),
		)).WithTheme(theme)
		if err := runForm(bundleForm); err != nil {
			return nil, err
		}
	}

	// Modules already included by the chosen bundles start out checked.
	fromBundles := resolve.Bundles(cat, result.Bundles)

	for _, category := range catalog.Categories() {
		if len(cat.In(category)) == 0 {
			continue
		}
		preselected := make(map[string]bool, len(fromBundles[category]))
		for _, id := range fromBundles[category] {
			preselected[id] = true
		}

		var chosen []string
		form := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(categoryTitle(category)).
				Options(moduleOptions(cat, category, preselected)...).
				Value(&chosen),
		)).WithTheme(theme)
		if err := runForm(form); err != nil {
			return nil, err
		}
		result.Modules[category] = chosen
	}

	return result, nil
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func defaultProjectName(projectRoot string) string {
	name := filepath.Base(projectRoot)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "my-project"
	}
	return name
}

func categoryTitle(category catalog.Category) string {
	switch category {
	case catalog.CategoryAgents:
		return "Agents"
	case catalog.CategorySkills:
		return "Skills"
	case catalog.CategoryCommands:
		return "Commands"
	case catalog.CategoryDocs:
		return "Docs"
	default:
		return string(category)
	}
}
