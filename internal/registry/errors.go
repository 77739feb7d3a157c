// Package registry builds the module catalog from a template filesystem.
// Each category loads from a _registry.json manifest when present, falling
// back to scanning the category directory for markdown files with YAML
// frontmatter, and finally to an empty list. The resolution core never
// touches the filesystem; it only ever sees the catalog built here.
package registry

import "errors"

// Sentinel errors for the registry package.
var (
	// ErrUnreadableRoot indicates the template filesystem root could not be read.
	ErrUnreadableRoot = errors.New("registry: template root not readable")

	// ErrInvalidManifest indicates a _registry.json manifest failed to parse.
	// Loaders treat this as a fallback trigger, not a fatal condition.
	ErrInvalidManifest = errors.New("registry: invalid manifest")

	// ErrInvalidFrontmatter indicates a module file's YAML frontmatter failed
	// to parse. The file is skipped with a warning.
	ErrInvalidFrontmatter = errors.New("registry: invalid frontmatter")
)
