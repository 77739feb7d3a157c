package resolve

import (
	"fmt"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// Issue describes one missing bundle requirement.
type Issue struct {
	// ModuleID is the bundle entry that declared the requirement.
	ModuleID       string
	ModuleCategory catalog.Category

	// DependencyID is the bundle entry the requirement points at.
	DependencyID       string
	DependencyCategory catalog.Category

	Message string
}

// AutoInclude names a module the caller should add to heal a hard
// requirement gap.
type AutoInclude struct {
	ID       string
	Category catalog.Category
}

// BundleValidation is the outcome of cross-checking a selection against the
// requires/recommends relationships declared by the chosen bundles.
type BundleValidation struct {
	// Valid is true iff Errors is empty; warnings never affect it.
	Valid bool

	// Errors are hard requirements missing from the selection.
	Errors []Issue

	// Warnings are optional recommendations missing from the selection.
	Warnings []Issue

	// AutoIncluded lists the missing hard dependencies, deduplicated.
	// The validator never mutates the selection; applying these is the
	// caller's decision.
	AutoIncluded []AutoInclude
}

// ValidateBundles checks the selected module set against the requiredBy
// relationships of the given bundles.
//
// A bundle entry with a non-empty RequiredBy list that is absent from the
// selection produces one error per requirer plus an auto-include suggestion,
// or one warning per requirer when the entry is marked optional. The
// selection itself is never modified.
func ValidateBundles(selected Selection, bundles []catalog.Bundle) BundleValidation {
	v := BundleValidation{Valid: true}
	included := make(map[catalog.Category]map[string]bool)

	for _, b := range bundles {
		for _, entry := range b.Modules {
			if len(entry.RequiredBy) == 0 {
				continue
			}
			if selectionContains(selected, entry.Category, entry.ID) {
				continue
			}

			for _, requirer := range entry.RequiredBy {
				issue := Issue{
					ModuleID:           requirer,
					ModuleCategory:     entryCategory(b, requirer),
					DependencyID:       entry.ID,
					DependencyCategory: entry.Category,
				}
				if entry.Optional {
					issue.Message = fmt.Sprintf(
						"bundle %q: %s recommends %s/%s, which is not selected",
						b.ID, requirer, entry.Category, entry.ID)
					v.Warnings = append(v.Warnings, issue)
					continue
				}
				issue.Message = fmt.Sprintf(
					"bundle %q: %s requires %s/%s, which is not selected",
					b.ID, requirer, entry.Category, entry.ID)
				v.Errors = append(v.Errors, issue)
			}

			if !entry.Optional {
				if included[entry.Category] == nil {
					included[entry.Category] = make(map[string]bool)
				}
				if !included[entry.Category][entry.ID] {
					included[entry.Category][entry.ID] = true
					v.AutoIncluded = append(v.AutoIncluded, AutoInclude{
						ID:       entry.ID,
						Category: entry.Category,
					})
				}
			}
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}

// selectionContains reports whether the selection holds the given id in the
// given category.
func selectionContains(sel Selection, category catalog.Category, id string) bool {
	for _, s := range sel[category] {
		if s == id {
			return true
		}
	}
	return false
}

// entryCategory looks up the category of a requirer id among the bundle's
// own entries. Requirers are declared within the same bundle; when the id is
// not found the category is left empty rather than guessed.
func entryCategory(b catalog.Bundle, id string) catalog.Category {
	for _, entry := range b.Modules {
		if entry.ID == id {
			return entry.Category
		}
	}
	return ""
}
