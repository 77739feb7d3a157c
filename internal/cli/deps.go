// Package cli provides the Cobra command tree for the stackkit CLI. This
// file defines the Dependencies struct (composition root) that wires the
// catalog, configuration, and UI services together; commands access them
// only through the package-level deps variable.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/stackkit/stackkit/internal/assets"
	"github.com/stackkit/stackkit/internal/config"
	"github.com/stackkit/stackkit/internal/registry"
	"github.com/stackkit/stackkit/internal/ui"
	"github.com/stackkit/stackkit/pkg/catalog"
)

// Dependencies holds all services used by CLI commands.
type Dependencies struct {
	Catalog  *catalog.Catalog
	Config   *config.Manager
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Progress ui.Progress
	Assets   fs.FS
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. It should be called
// once during application startup, before any command runs.
func InitDependencies() error {
	// CLI output goes through the theme; keep structured logs out of the way.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	templateFS := assets.Templates()
	cat, err := registry.NewLoader(logger).Load(templateFS)
	if err != nil {
		return fmt.Errorf("load module catalog: %w", err)
	}

	noColor := os.Getenv("NO_COLOR") != "" ||
		os.Getenv("STACKKIT_NO_COLOR") == "true" || os.Getenv("STACKKIT_NO_COLOR") == "1"
	theme := ui.NewTheme(noColor)
	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Catalog:  cat,
		Config:   config.NewManager(),
		Theme:    theme,
		Headless: headless,
		Progress: ui.NewProgress(theme, headless),
		Assets:   templateFS,
		Logger:   logger,
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// ApplyUIFlags adjusts the UI services for the --no-color and
// --non-interactive persistent flags.
func (d *Dependencies) ApplyUIFlags(noColor, nonInteractive bool) {
	if noColor && !d.Theme.NoColor {
		d.Theme = ui.NewTheme(true)
		d.Progress = ui.NewProgress(d.Theme, d.Headless)
	}
	if nonInteractive {
		d.Headless.ForceHeadless(true)
	}
}
