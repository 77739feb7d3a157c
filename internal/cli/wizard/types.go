// Package wizard provides the interactive selection flow for stackkit init,
// built on huh forms.
package wizard

import (
	"errors"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// Result holds the user's selections from the init wizard.
type Result struct {
	ProjectName string
	UserName    string

	// Bundles are the chosen bundle ids.
	Bundles []string

	// Modules are the chosen module ids per category, including the
	// modules preselected by the chosen bundles.
	Modules map[catalog.Category][]string
}

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")
