package resolve

import "github.com/stackkit/stackkit/pkg/catalog"

// Bundles flattens the given bundle ids into per-category module id lists.
//
// Bundles are processed in the order given; within each category the output
// keeps first-occurrence order and contains each module id at most once.
// Bundle ids not present in the catalog are ignored: callers may pass stale
// ids from saved configuration and expansion stays best-effort. Same-category
// module dependencies are not expanded here; that is Modules' job.
func Bundles(cat *catalog.Catalog, bundleIDs []string) map[catalog.Category][]string {
	out := make(map[catalog.Category][]string)
	seen := make(map[catalog.Category]map[string]bool)

	for _, id := range bundleIDs {
		b, ok := cat.Bundle(id)
		if !ok {
			continue
		}
		for _, entry := range b.Modules {
			if seen[entry.Category] == nil {
				seen[entry.Category] = make(map[string]bool)
			}
			if seen[entry.Category][entry.ID] {
				continue
			}
			seen[entry.Category][entry.ID] = true
			out[entry.Category] = append(out[entry.Category], entry.ID)
		}
	}

	return out
}
