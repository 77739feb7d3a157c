package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/stackkit/stackkit/pkg/catalog"
)

// manifestName is the per-category module manifest file.
const manifestName = "_registry.json"

// bundlesName is the root-level bundle definition file.
const bundlesName = "bundles.json"

// categoryManifest is the JSON shape of a _registry.json file.
type categoryManifest struct {
	Modules []manifestModule `json:"modules"`
}

type manifestModule struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Dependencies []string `json:"dependencies"`
	Path         string   `json:"path"`
}

// bundleFile is the JSON shape of bundles.json.
type bundleFile struct {
	Bundles []catalog.Bundle `json:"bundles"`
}

// Loader builds a catalog from a template filesystem.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger disables warnings.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load assembles a catalog from the given filesystem. Per category the
// fallback order is: _registry.json manifest, then directory scan of
// markdown files, then empty. A missing bundles.json yields no bundles.
// The only fatal condition is an unreadable filesystem root.
func (l *Loader) Load(fsys fs.FS) (*catalog.Catalog, error) {
	if _, err := fs.ReadDir(fsys, "."); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableRoot, err)
	}

	cat := catalog.New()
	for _, category := range catalog.Categories() {
		cat.Modules[category] = l.loadCategory(fsys, category)
	}

	bundles, err := l.loadBundles(fsys)
	if err != nil {
		l.logger.Warn("failed to load bundles, continuing without", "error", err)
	}
	cat.Bundles = bundles

	return cat, nil
}

// loadCategory loads one category's modules, trying the manifest first and
// falling back to a directory scan.
func (l *Loader) loadCategory(fsys fs.FS, category catalog.Category) []catalog.Module {
	dir := string(category)

	if mods, ok := l.loadManifest(fsys, category, path.Join(dir, manifestName)); ok {
		return mods
	}

	return l.scanDirectory(fsys, category, dir)
}

// loadManifest reads a _registry.json manifest. Returns (nil, false) when
// the manifest is absent or invalid so the caller falls back to scanning.
func (l *Loader) loadManifest(fsys fs.FS, category catalog.Category, name string) ([]catalog.Module, bool) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, false
	}

	var manifest categoryManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		l.logger.Warn("invalid registry manifest, falling back to directory scan",
			"path", name, "error", fmt.Errorf("%w: %v", ErrInvalidManifest, err))
		return nil, false
	}

	mods := make([]catalog.Module, 0, len(manifest.Modules))
	for _, mm := range manifest.Modules {
		if mm.ID == "" {
			l.logger.Warn("skipping manifest entry without id", "path", name)
			continue
		}
		filePath := mm.Path
		if filePath == "" {
			filePath = path.Join(string(category), mm.ID+".md")
		}
		mods = append(mods, catalog.Module{
			ID:           mm.ID,
			Category:     category,
			Name:         mm.Name,
			Description:  mm.Description,
			Tags:         mm.Tags,
			Dependencies: mm.Dependencies,
			Path:         filePath,
		})
	}
	return mods, true
}

// scanDirectory builds module records from the markdown files of a category
// directory. Missing directories and files with broken frontmatter are
// tolerated; the scan returns whatever parsed cleanly, sorted by filename
// for deterministic catalog order.
func (l *Loader) scanDirectory(fsys fs.FS, category catalog.Category, dir string) []catalog.Module {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if e.Name() == "README.md" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var mods []catalog.Module
	for _, name := range names {
		filePath := path.Join(dir, name)
		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			l.logger.Warn("unreadable module file, skipping", "path", filePath, "error", err)
			continue
		}

		meta, _, err := parseFrontmatter(content)
		if err != nil {
			l.logger.Warn("skipping module with invalid frontmatter", "path", filePath, "error", err)
			continue
		}

		id := meta.ID
		if id == "" {
			id = strings.TrimSuffix(name, ".md")
		}
		moduleName := meta.Name
		if moduleName == "" {
			moduleName = id
		}

		mods = append(mods, catalog.Module{
			ID:           id,
			Category:     category,
			Name:         moduleName,
			Description:  meta.Description,
			Tags:         meta.Tags,
			Dependencies: meta.Dependencies,
			Path:         filePath,
		})
	}
	return mods
}

// loadBundles reads bundles.json from the filesystem root. A missing file
// is not an error; an unparsable one is.
func (l *Loader) loadBundles(fsys fs.FS) ([]catalog.Bundle, error) {
	data, err := fs.ReadFile(fsys, bundlesName)
	if err != nil {
		return nil, nil
	}

	var bf bundleFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, bundlesName, err)
	}
	return bf.Bundles, nil
}
