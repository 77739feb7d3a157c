// Package catalog defines the shared data model for StackKit's installable
// template assets: modules (agents, skills, commands, docs) and bundles.
// A Catalog is assembled by internal/registry and consumed read-only by the
// resolution functions in internal/resolve and the CLI layer.
package catalog
