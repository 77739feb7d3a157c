package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// claudeDir is the directory under the project root that receives module files.
const claudeDir = ".claude"

// rootTemplates maps root-level .tmpl files in the template tree to their
// destination relative to the project root.
var rootTemplates = map[string]string{
	"CLAUDE.md.tmpl":     "CLAUDE.md",
	"settings.json.tmpl": filepath.Join(claudeDir, "settings.json"),
}

// Report summarizes one installation run.
type Report struct {
	// Written lists destination paths (relative to the project root)
	// that were created or overwritten.
	Written []string

	// Skipped lists destinations left untouched because a file already
	// existed and force mode was off.
	Skipped []string
}

// Installer copies resolved module files and rendered root templates into a
// target project.
type Installer interface {
	// Install writes each module's file to .claude/<category>/<id>.md and
	// renders the root .tmpl files with tmplCtx. Existing files are
	// skipped unless force mode is enabled; every write is preceded by a
	// path containment check and a context cancellation check.
	Install(ctx context.Context, projectRoot string, modules []catalog.Module, tmplCtx *Context) (Report, error)

	// Remove deletes a single installed module file. Missing files are
	// not an error.
	Remove(projectRoot string, m catalog.Module) error
}

type installer struct {
	fsys     fs.FS
	renderer Renderer
	force    bool
}

// InstallerOption configures an Installer.
type InstallerOption func(*installer)

// WithForce makes Install overwrite existing files.
func WithForce(force bool) InstallerOption {
	return func(i *installer) {
		i.force = force
	}
}

// NewInstaller creates an Installer over the given template filesystem.
// In production the fs.FS comes from go:embed; tests use fstest.MapFS.
func NewInstaller(fsys fs.FS, opts ...InstallerOption) Installer {
	inst := &installer{fsys: fsys, renderer: NewRenderer(fsys)}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Install writes module files and rendered root templates under projectRoot.
func (i *installer) Install(ctx context.Context, projectRoot string, modules []catalog.Module, tmplCtx *Context) (Report, error) {
	projectRoot = filepath.Clean(projectRoot)
	var report Report

	for _, m := range modules {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src := m.Path
		if src == "" {
			src = fmt.Sprintf("%s/%s.md", m.Category, m.ID)
		}
		content, err := fs.ReadFile(i.fsys, src)
		if err != nil {
			return report, fmt.Errorf("%w: %s", ErrTemplateNotFound, src)
		}

		destRel := filepath.Join(claudeDir, string(m.Category), m.ID+".md")
		written, err := i.writeFile(projectRoot, destRel, content)
		if err != nil {
			return report, err
		}
		report.note(destRel, written)
	}

	if tmplCtx != nil {
		for src, destRel := range rootTemplates {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if _, err := fs.Stat(i.fsys, src); err != nil {
				continue
			}
			rendered, err := i.renderer.Render(src, tmplCtx)
			if err != nil {
				return report, fmt.Errorf("render %q: %w", src, err)
			}
			written, err := i.writeFile(projectRoot, destRel, rendered)
			if err != nil {
				return report, err
			}
			report.note(destRel, written)
		}
	}

	return report, nil
}

// Remove deletes the installed file of a module.
func (i *installer) Remove(projectRoot string, m catalog.Module) error {
	destRel := filepath.Join(claudeDir, string(m.Category), m.ID+".md")
	if err := validateInstallPath(projectRoot, destRel); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(filepath.Clean(projectRoot), destRel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", destRel, err)
	}
	return nil
}

// writeFile writes content at destRel under projectRoot, creating parent
// directories. Returns false when the destination exists and force is off.
func (i *installer) writeFile(projectRoot, destRel string, content []byte) (bool, error) {
	if err := validateInstallPath(projectRoot, destRel); err != nil {
		return false, err
	}

	destPath := filepath.Join(projectRoot, destRel)
	if !i.force {
		if _, err := os.Stat(destPath); err == nil {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return false, fmt.Errorf("install mkdir %q: %w", filepath.Dir(destPath), err)
	}

	// Shell scripts need the executable bit.
	perm := fs.FileMode(0o644)
	if strings.HasSuffix(destRel, ".sh") {
		perm = 0o755
	}

	if err := os.WriteFile(destPath, content, perm); err != nil {
		return false, fmt.Errorf("install write %q: %w", destPath, err)
	}
	return true, nil
}

func (r *Report) note(destRel string, written bool) {
	if written {
		r.Written = append(r.Written, destRel)
	} else {
		r.Skipped = append(r.Skipped, destRel)
	}
}

// validateInstallPath ensures a destination path does not escape projectRoot.
func validateInstallPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}
	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
