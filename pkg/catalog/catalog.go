package catalog

// Category identifies one of the fixed module groupings.
type Category string

const (
	// CategoryAgents holds sub-agent definitions deployed to .claude/agents/.
	CategoryAgents Category = "agents"

	// CategorySkills holds skill definitions deployed to .claude/skills/.
	CategorySkills Category = "skills"

	// CategoryCommands holds slash-command definitions deployed to .claude/commands/.
	CategoryCommands Category = "commands"

	// CategoryDocs holds reference documents deployed to .claude/docs/.
	CategoryDocs Category = "docs"
)

// Categories returns all module categories in canonical order.
func Categories() []Category {
	return []Category{CategoryAgents, CategorySkills, CategoryCommands, CategoryDocs}
}

// IsValid checks if the category is one of the fixed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAgents, CategorySkills, CategoryCommands, CategoryDocs:
		return true
	}
	return false
}

// Module is a single installable unit within a category.
type Module struct {
	// ID is unique within the module's category.
	ID string `json:"id" yaml:"id"`

	// Category is the grouping this module belongs to.
	Category Category `json:"category" yaml:"category"`

	// Name and Description are display strings, opaque to resolution.
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Tags are free-text labels used for tag-based selection and suggestions.
	Tags []string `json:"tags" yaml:"tags"`

	// Dependencies lists same-category module ids that must be installed
	// alongside this module. Ids may reference modules absent from the
	// catalog and may form cycles; resolution tolerates both.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	// Path is the source file of this module within the template tree,
	// relative to the template root. Used by the installer.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// HasTag reports whether the module carries the given tag.
func (m Module) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BundleModule is a single module reference within a bundle.
type BundleModule struct {
	ID       string   `json:"id" yaml:"id"`
	Category Category `json:"category" yaml:"category"`

	// Optional marks this entry as a soft recommendation: a missing
	// dependency produces a validator warning rather than an error.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

	// RequiredBy lists ids of other entries in the same bundle that
	// declare a hard requirement on this entry.
	RequiredBy []string `json:"requiredBy,omitempty" yaml:"required_by,omitempty"`
}

// Bundle is a named group of module references selectable as one unit.
type Bundle struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Category is a descriptive grouping (stack/testing/quality/...).
	// Display only; resolution never consults it.
	Category string `json:"category" yaml:"category"`

	Modules []BundleModule `json:"modules" yaml:"modules"`

	// AlternativeTo and Complexity are display metadata.
	AlternativeTo []string `json:"alternativeTo,omitempty" yaml:"alternative_to,omitempty"`
	Complexity    string   `json:"complexity,omitempty" yaml:"complexity,omitempty"`
}

// Catalog is the read-only collection of all known modules and bundles.
// It is assembled once by the registry loader; no resolution function
// mutates it.
type Catalog struct {
	Modules map[Category][]Module
	Bundles []Bundle
}

// New returns an empty catalog with all category lists initialized.
func New() *Catalog {
	mods := make(map[Category][]Module, len(Categories()))
	for _, c := range Categories() {
		mods[c] = nil
	}
	return &Catalog{Modules: mods}
}

// In returns the modules of the given category.
func (c *Catalog) In(category Category) []Module {
	return c.Modules[category]
}

// Module looks up a module by category and exact id.
func (c *Catalog) Module(category Category, id string) (Module, bool) {
	for _, m := range c.Modules[category] {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Bundle looks up a bundle by id.
func (c *Catalog) Bundle(id string) (Bundle, bool) {
	for _, b := range c.Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return Bundle{}, false
}

// Dependents returns the ids of modules in category whose Dependencies
// list contains id. Only direct dependents are reported.
func (c *Catalog) Dependents(category Category, id string) []string {
	var out []string
	for _, m := range c.Modules[category] {
		for _, dep := range m.Dependencies {
			if dep == id {
				out = append(out, m.ID)
				break
			}
		}
	}
	return out
}

// Len returns the total number of modules across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, mods := range c.Modules {
		n += len(mods)
	}
	return n
}
