package resolve

import "github.com/stackkit/stackkit/pkg/catalog"

// Impact reports whether a module can be removed from an installation.
type Impact struct {
	// CanRemove is true iff no installed module directly depends on the
	// candidate.
	CanRemove bool

	// BlockedBy lists the installed modules whose Dependencies contain
	// the candidate id.
	BlockedBy []string
}

// RemovalImpact checks whether candidateID can be removed given the set of
// installed module ids in the same category.
//
// Only direct dependents are considered: a module that reaches the candidate
// through an intermediate dependency does not block removal unless it also
// lists the candidate itself.
func RemovalImpact(cat *catalog.Catalog, category catalog.Category, candidateID string, installedIDs []string) Impact {
	installed := make(map[string]bool, len(installedIDs))
	for _, id := range installedIDs {
		installed[id] = true
	}

	var blockedBy []string
	for _, dep := range cat.Dependents(category, candidateID) {
		if dep == candidateID {
			continue
		}
		if installed[dep] {
			blockedBy = append(blockedBy, dep)
		}
	}

	return Impact{
		CanRemove: len(blockedBy) == 0,
		BlockedBy: blockedBy,
	}
}
