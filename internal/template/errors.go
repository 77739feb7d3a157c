// Package template renders and installs StackKit template assets into a
// target project: module markdown files are copied into .claude/ and root
// .tmpl files are rendered with a TemplateContext.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the
	// template filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a key absent
	// from the render data (strict mode).
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates rendered output still contains an
	// unexpanded placeholder token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a template path would escape the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")
)
