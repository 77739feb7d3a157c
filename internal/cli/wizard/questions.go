package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// bundleOptions builds the multi-select options for bundle selection.
func bundleOptions(cat *catalog.Catalog) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(cat.Bundles))
	for _, b := range cat.Bundles {
		label := b.Name
		if b.Description != "" {
			label = fmt.Sprintf("%s - %s", b.Name, b.Description)
		}
		if b.Complexity != "" {
			label = fmt.Sprintf("%s (%s)", label, b.Complexity)
		}
		opts = append(opts, huh.NewOption(label, b.ID))
	}
	return opts
}

// moduleOptions builds the multi-select options for one category.
// Ids in preselected start out checked, typically because a chosen bundle
// already includes them.
func moduleOptions(cat *catalog.Catalog, category catalog.Category, preselected map[string]bool) []huh.Option[string] {
	modules := cat.In(category)
	opts := make([]huh.Option[string], 0, len(modules))
	for _, m := range modules {
		label := m.Name
		if label == "" {
			label = m.ID
		}
		if m.Description != "" {
			label = fmt.Sprintf("%s - %s", label, m.Description)
		}
		opts = append(opts, huh.NewOption(label, m.ID).Selected(preselected[m.ID]))
	}
	return opts
}
