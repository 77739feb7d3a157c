// Package resolve implements StackKit's module and bundle resolution engine:
// transitive dependency expansion with cycle detection, bundle flattening,
// bundle requirement validation, removal impact analysis, and tag-based
// module suggestions.
//
// Every function in this package is a pure computation over a read-only
// catalog and a caller-supplied selection. Failure modes are represented as
// data (unresolved ids, circular ids, validation issues) rather than errors;
// no function here returns an error or panics on malformed selections.
package resolve
