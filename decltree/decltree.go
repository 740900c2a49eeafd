// Package decltree implements the declaration tree and registrar
// (spec.md §4.6): a two-level category -> subcategory -> module mapping,
// each module carrying its own local declarations and endpoints, plus a
// single global table reserved for response declarations.
//
// Grounded on original_source's src/codegen/parsed/api_tree.rs
// (ParsedAPITree: global_types, modules, add_global_type,
// add_boxed_global_type, add_module) for the two-level/global-table
// split, and src/codegen/mod.rs (Codegen::parse) for how modules and the
// global table are populated while walking the source tree.
package decltree

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/endpoint"
	"github.com/sdkgen/apigen/genconfig"
	"github.com/sdkgen/apigen/warn"
)

// Module holds one subcategory's endpoints and the declarations local to
// them (parameters, query, body — never response, which is always
// global).
type Module struct {
	Category    string
	Subcategory string

	declarations map[string]decl.Declaration
	declOrder    []string
	Endpoints    []*endpoint.Endpoint
}

// Declarations returns the module's local declarations in registration
// order.
func (m *Module) Declarations() []decl.Declaration {
	out := make([]decl.Declaration, 0, len(m.declOrder))
	for _, name := range m.declOrder {
		out = append(out, m.declarations[name])
	}

	return out
}

// Lookup returns a previously registered module-local declaration by
// name.
func (m *Module) Lookup(name string) (decl.Declaration, bool) {
	d, ok := m.declarations[name]

	return d, ok
}

// Register adds d to the module's local declarations (§4.6), honoring
// policy (genconfig.Config.ModuleCollisionPolicy): under PolicyDedupe,
// structurally identical declarations sharing a name are deduplicated
// with a warning (CodeModuleDedupe) and anything else is a hard error;
// under PolicyOverwrite, the later declaration always replaces the
// earlier one, with a warning (CodeModuleOverwrite).
func (m *Module) Register(d decl.Declaration, policy genconfig.CollisionPolicy, warnings *warn.Warnings) error {
	name := d.DeclName()

	existing, ok := m.declarations[name]
	if !ok {
		if m.declarations == nil {
			m.declarations = make(map[string]decl.Declaration)
		}
		m.declarations[name] = d
		m.declOrder = append(m.declOrder, name)

		return nil
	}

	if policy == genconfig.PolicyOverwrite {
		if warnings != nil {
			warnings.Append(warn.New(warn.CodeModuleOverwrite, name, "declaration overwrote an earlier declaration with the same name"))
		}
		m.declarations[name] = d

		return nil
	}

	if reflect.DeepEqual(existing, d) {
		if warnings != nil {
			warnings.Append(warn.New(warn.CodeModuleDedupe, name, "duplicate declaration merged by structural equality"))
		}

		return nil
	}

	return fmt.Errorf("decltree: module %s/%s: declaration %q collides with a structurally different declaration",
		m.Category, m.Subcategory, name)
}

// AddEndpoint appends an endpoint to the module.
func (m *Module) AddEndpoint(e *endpoint.Endpoint) {
	m.Endpoints = append(m.Endpoints, e)
}

// Tree is the full declaration tree: category -> subcategory -> module,
// plus the global response table (§3, §4.6).
type Tree struct {
	modules map[string]map[string]*Module
	global  map[string]decl.Declaration
	// globalOrder preserves the order responses were first registered,
	// for deterministic emission.
	globalOrder []string
}

// NewTree creates an empty declaration tree.
func NewTree() *Tree {
	return &Tree{
		modules: make(map[string]map[string]*Module),
		global:  make(map[string]decl.Declaration),
	}
}

// Module returns the module for (category, subcategory), creating it (and
// its parent category, if needed) on first access.
func (t *Tree) Module(category, subcategory string) *Module {
	subs, ok := t.modules[category]
	if !ok {
		subs = make(map[string]*Module)
		t.modules[category] = subs
	}

	mod, ok := subs[subcategory]
	if !ok {
		mod = &Module{Category: category, Subcategory: subcategory}
		subs[subcategory] = mod
	}

	return mod
}

// Categories returns the tree's category names, sorted, for deterministic
// traversal.
func (t *Tree) Categories() []string {
	names := make([]string, 0, len(t.modules))
	for c := range t.modules {
		names = append(names, c)
	}
	sort.Strings(names)

	return names
}

// Subcategories returns the module names under category, sorted.
func (t *Tree) Subcategories(category string) []string {
	subs := t.modules[category]
	names := make([]string, 0, len(subs))
	for s := range subs {
		names = append(names, s)
	}
	sort.Strings(names)

	return names
}

// RegisterGlobal adds d to the global response table (§4.6), honoring
// policy (genconfig.Config.ResponseCollisionPolicy). Under the default
// PolicyOverwrite, a name collision does not fail: the later insertion
// overwrites the earlier one, and a warning is recorded
// (CodeResponseOverwrite), since the spec calls this out as the
// historical, possibly-latent-bug behavior rather than a deliberate
// policy (§9 "Global response table"). Under PolicyDedupe, a collision
// is resolved the way module-local declarations are: structurally
// identical declarations are merged with a warning (CodeResponseDedupe),
// and anything else is a hard error.
func (t *Tree) RegisterGlobal(d decl.Declaration, policy genconfig.CollisionPolicy, warnings *warn.Warnings) error {
	name := d.DeclName()

	existing, exists := t.global[name]
	if !exists {
		t.globalOrder = append(t.globalOrder, name)
		t.global[name] = d

		return nil
	}

	if policy == genconfig.PolicyDedupe {
		if reflect.DeepEqual(existing, d) {
			if warnings != nil {
				warnings.Append(warn.New(warn.CodeResponseDedupe, name, "duplicate response declaration merged by structural equality"))
			}

			return nil
		}

		return fmt.Errorf("decltree: global response %q collides with a structurally different declaration", name)
	}

	if warnings != nil {
		warnings.Append(warn.New(warn.CodeResponseOverwrite, name, "response declaration overwrote an earlier declaration with the same name"))
	}
	t.global[name] = d

	return nil
}

// LookupGlobal returns a previously registered global declaration by
// name.
func (t *Tree) LookupGlobal(name string) (decl.Declaration, bool) {
	d, ok := t.global[name]

	return d, ok
}

// GlobalDeclarations returns the global response table in first-insertion
// order.
func (t *Tree) GlobalDeclarations() []decl.Declaration {
	out := make([]decl.Declaration, 0, len(t.globalOrder))
	for _, name := range t.globalOrder {
		out = append(out, t.global[name])
	}

	return out
}
