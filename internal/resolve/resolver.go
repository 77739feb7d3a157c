package resolve

import "github.com/stackkit/stackkit/pkg/catalog"

// Selection maps each category to the identifiers the user requested.
// Each identifier may be an exact module id, a tag, or both at once.
type Selection map[catalog.Category][]string

// Result is the outcome of resolving one category's requested identifiers.
type Result struct {
	// Resolved holds the full transitive closure of the selection,
	// ordered so that dependencies precede their dependents, with no
	// duplicate ids.
	Resolved []catalog.Module

	// Unresolved lists requested identifiers that matched neither a
	// module id nor a tag. Dependency ids missing from the catalog are
	// dropped silently and never appear here.
	Unresolved []string

	// Circular lists module ids that participate in a dependency cycle.
	Circular []string
}

// Modules resolves the requested identifiers within a category to the full
// set of required modules.
//
// Each identifier is matched two ways: an exact-id match selects that module,
// and independently every module whose tag set contains the identifier is
// selected. An identifier matching neither is reported in Unresolved. Every
// selected module's same-category dependencies are pulled in transitively.
// Cycles are detected via the active traversal stack and reported in
// Circular; traversal continues for the rest of the selection.
func Modules(cat *catalog.Catalog, category catalog.Category, requested []string) Result {
	w := newWalker(cat, category)

	for _, req := range requested {
		matched := false

		if _, ok := cat.Module(category, req); ok {
			matched = true
			w.visit(req)
		}
		for _, m := range cat.In(category) {
			if m.HasTag(req) {
				matched = true
				w.visit(m.ID)
			}
		}

		if !matched {
			w.unresolved = append(w.unresolved, req)
		}
	}

	return Result{
		Resolved:   w.resolved,
		Unresolved: w.unresolved,
		Circular:   w.circular,
	}
}

// SortByDependencies reorders a flat module list so that every module's
// dependencies (when present within the list) appear before it. Dependency
// ids outside the list are ignored; they are never fetched from a wider
// catalog. Ties between independent modules keep first-discovery order.
// Cycles within the list cannot hang the sort.
func SortByDependencies(modules []catalog.Module) []catalog.Module {
	byID := make(map[string]catalog.Module, len(modules))
	for _, m := range modules {
		if _, ok := byID[m.ID]; !ok {
			byID[m.ID] = m
		}
	}

	sorted := make([]catalog.Module, 0, len(modules))
	done := make(map[string]bool, len(modules))
	onStack := make(map[string]bool)

	var visit func(id string)
	visit = func(id string) {
		if done[id] || onStack[id] {
			return
		}
		m, ok := byID[id]
		if !ok {
			return
		}
		onStack[id] = true
		for _, dep := range m.Dependencies {
			visit(dep)
		}
		onStack[id] = false
		done[id] = true
		sorted = append(sorted, m)
	}

	for _, m := range modules {
		visit(m.ID)
	}
	return sorted
}

// walker performs the post-order dependency traversal for one category.
type walker struct {
	cat      *catalog.Catalog
	category catalog.Category

	visited map[string]bool
	onStack map[string]bool
	stack   []string

	resolved   []catalog.Module
	unresolved []string

	circular     []string
	circularSeen map[string]bool
}

func newWalker(cat *catalog.Catalog, category catalog.Category) *walker {
	return &walker{
		cat:          cat,
		category:     category,
		visited:      make(map[string]bool),
		onStack:      make(map[string]bool),
		circularSeen: make(map[string]bool),
	}
}

// visit expands a module and its dependencies depth-first, appending the
// module after its dependencies (post-order). Ids already on the active
// stack mark a cycle: the entire stack segment from the re-encountered id
// onward is recorded as circular and recursion stops there.
func (w *walker) visit(id string) {
	if w.onStack[id] {
		w.recordCycle(id)
		return
	}
	if w.visited[id] {
		return
	}

	m, ok := w.cat.Module(w.category, id)
	if !ok {
		// Dependency id absent from the catalog: dropped, not unresolved.
		return
	}

	w.onStack[id] = true
	w.stack = append(w.stack, id)

	for _, dep := range m.Dependencies {
		w.visit(dep)
	}

	w.stack = w.stack[:len(w.stack)-1]
	delete(w.onStack, id)

	w.visited[id] = true
	w.resolved = append(w.resolved, m)
}

// recordCycle records every id on the active stack from the re-encountered
// id to the top, so a mutual cycle A->B->A reports both A and B.
func (w *walker) recordCycle(id string) {
	start := 0
	for i, sid := range w.stack {
		if sid == id {
			start = i
			break
		}
	}
	for _, sid := range w.stack[start:] {
		if !w.circularSeen[sid] {
			w.circularSeen[sid] = true
			w.circular = append(w.circular, sid)
		}
	}
}
