package catalog

import "testing"

func sampleCatalog() *Catalog {
	cat := New()
	cat.Modules[CategoryAgents] = []Module{
		{ID: "tech-lead", Category: CategoryAgents, Tags: []string{"core", "planning"}},
		{ID: "code-reviewer", Category: CategoryAgents, Dependencies: []string{"qa-engineer"}},
		{ID: "qa-engineer", Category: CategoryAgents, Tags: []string{"quality"}},
	}
	cat.Bundles = []Bundle{
		{ID: "quality-suite", Modules: []BundleModule{{ID: "qa-engineer", Category: CategoryAgents}}},
	}
	return cat
}

func TestCategory(t *testing.T) {
	t.Run("fixed_set_is_valid", func(t *testing.T) {
		for _, c := range Categories() {
			if !c.IsValid() {
				t.Errorf("category %q reported invalid", c)
			}
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		if Category("plugins").IsValid() {
			t.Error("unknown category reported valid")
		}
	})
}

func TestCatalogLookups(t *testing.T) {
	cat := sampleCatalog()

	t.Run("module_by_exact_id", func(t *testing.T) {
		m, ok := cat.Module(CategoryAgents, "tech-lead")
		if !ok || m.ID != "tech-lead" {
			t.Errorf("Module lookup = %+v, %v", m, ok)
		}
		if _, ok := cat.Module(CategorySkills, "tech-lead"); ok {
			t.Error("lookup crossed category boundary")
		}
	})

	t.Run("bundle_by_id", func(t *testing.T) {
		if _, ok := cat.Bundle("quality-suite"); !ok {
			t.Error("bundle not found")
		}
		if _, ok := cat.Bundle("ghost"); ok {
			t.Error("unknown bundle found")
		}
	})

	t.Run("dependents_are_direct_only", func(t *testing.T) {
		got := cat.Dependents(CategoryAgents, "qa-engineer")
		if len(got) != 1 || got[0] != "code-reviewer" {
			t.Errorf("Dependents = %v", got)
		}
		if got := cat.Dependents(CategoryAgents, "tech-lead"); len(got) != 0 {
			t.Errorf("unexpected dependents: %v", got)
		}
	})

	t.Run("has_tag", func(t *testing.T) {
		m, _ := cat.Module(CategoryAgents, "tech-lead")
		if !m.HasTag("planning") || m.HasTag("quality") {
			t.Errorf("HasTag misbehaved for %v", m.Tags)
		}
	})

	t.Run("len_counts_all_categories", func(t *testing.T) {
		if cat.Len() != 3 {
			t.Errorf("Len = %d", cat.Len())
		}
	})
}
