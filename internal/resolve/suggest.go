package resolve

import "github.com/stackkit/stackkit/pkg/catalog"

// Suggestions proposes modules sharing a tag with anything already
// installed, across all categories.
//
// Modules already present in the installed set for their category are
// excluded, and a module reachable through several shared tags appears once.
// An empty installed set yields no suggestions.
func Suggestions(cat *catalog.Catalog, installed Selection) []catalog.Module {
	tags := installedTags(cat, installed)
	if len(tags) == 0 {
		return nil
	}

	installedSet := make(map[catalog.Category]map[string]bool, len(installed))
	for category, ids := range installed {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		installedSet[category] = set
	}

	var out []catalog.Module
	seen := make(map[catalog.Category]map[string]bool)

	for _, category := range catalog.Categories() {
		for _, m := range cat.In(category) {
			if installedSet[category][m.ID] {
				continue
			}
			if !sharesTag(m, tags) {
				continue
			}
			if seen[category] == nil {
				seen[category] = make(map[string]bool)
			}
			if seen[category][m.ID] {
				continue
			}
			seen[category][m.ID] = true
			out = append(out, m)
		}
	}

	return out
}

// installedTags collects the tag set of every installed module found in the
// catalog. Installed ids missing from the catalog contribute nothing.
func installedTags(cat *catalog.Catalog, installed Selection) map[string]bool {
	tags := make(map[string]bool)
	for category, ids := range installed {
		for _, id := range ids {
			m, ok := cat.Module(category, id)
			if !ok {
				continue
			}
			for _, t := range m.Tags {
				tags[t] = true
			}
		}
	}
	return tags
}

func sharesTag(m catalog.Module, tags map[string]bool) bool {
	for _, t := range m.Tags {
		if tags[t] {
			return true
		}
	}
	return false
}
