// Package assets embeds the default template tree shipped with the
// stackkit binary: module markdown files per category, registry manifests,
// bundle definitions, and root-level .tmpl files rendered at install time.
package assets

import (
	"embed"
	"io/fs"
)

// The all: prefix is required so files starting with an underscore
// (_registry.json) are included.
//
//go:embed all:templates
var templatesFS embed.FS

// Templates returns the embedded template tree rooted at the templates
// directory.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The embedded tree always contains templates/; reaching this
		// means the binary itself is broken.
		panic(err)
	}
	return sub
}
