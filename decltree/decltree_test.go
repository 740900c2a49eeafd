package decltree

import (
	"testing"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/genconfig"
	"github.com/sdkgen/apigen/warn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleRegisterDedupesStructurallyIdentical(t *testing.T) {
	tree := NewTree()
	mod := tree.Module("repos", "artifacts")

	var warnings warn.Warnings
	r1 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "name", Type: decl.Primitive("string")}}}
	r2 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "name", Type: decl.Primitive("string")}}}

	require.NoError(t, mod.Register(r1, genconfig.PolicyDedupe, &warnings))
	require.NoError(t, mod.Register(r2, genconfig.PolicyDedupe, &warnings))

	assert.True(t, warnings.Has(warn.CodeModuleDedupe))
	assert.Len(t, mod.Declarations(), 1)
}

func TestModuleRegisterCollisionFails(t *testing.T) {
	tree := NewTree()
	mod := tree.Module("repos", "artifacts")

	var warnings warn.Warnings
	r1 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "name", Type: decl.Primitive("string")}}}
	r2 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "sha", Type: decl.Primitive("string")}}}

	require.NoError(t, mod.Register(r1, genconfig.PolicyDedupe, &warnings))
	assert.Error(t, mod.Register(r2, genconfig.PolicyDedupe, &warnings))
}

func TestModuleRegisterOverwritesUnderPolicyOverwrite(t *testing.T) {
	tree := NewTree()
	mod := tree.Module("repos", "artifacts")

	var warnings warn.Warnings
	r1 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "name", Type: decl.Primitive("string")}}}
	r2 := &decl.Record{Name: "Tag", Fields: []decl.Field{{SourceName: "sha", Type: decl.Primitive("string")}}}

	require.NoError(t, mod.Register(r1, genconfig.PolicyOverwrite, &warnings))
	require.NoError(t, mod.Register(r2, genconfig.PolicyOverwrite, &warnings))

	assert.True(t, warnings.Has(warn.CodeModuleOverwrite))

	got, ok := mod.Lookup("Tag")
	require.True(t, ok)
	assert.Equal(t, r2, got)
}

func TestRegisterGlobalOverwritesWithWarning(t *testing.T) {
	tree := NewTree()
	var warnings warn.Warnings

	first := &decl.Record{Name: "ArtifactResponse"}
	second := &decl.Sum{Name: "ArtifactResponse"}

	require.NoError(t, tree.RegisterGlobal(first, genconfig.PolicyOverwrite, &warnings))
	assert.False(t, warnings.Has(warn.CodeResponseOverwrite))

	require.NoError(t, tree.RegisterGlobal(second, genconfig.PolicyOverwrite, &warnings))
	assert.True(t, warnings.Has(warn.CodeResponseOverwrite))

	got, ok := tree.LookupGlobal("ArtifactResponse")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Len(t, tree.GlobalDeclarations(), 1)
}

func TestRegisterGlobalDedupeFailsOnMismatch(t *testing.T) {
	tree := NewTree()
	var warnings warn.Warnings

	first := &decl.Record{Name: "ArtifactResponse"}
	second := &decl.Sum{Name: "ArtifactResponse"}

	require.NoError(t, tree.RegisterGlobal(first, genconfig.PolicyDedupe, &warnings))
	assert.Error(t, tree.RegisterGlobal(second, genconfig.PolicyDedupe, &warnings))
}

func TestTreeCategoriesAndSubcategoriesSorted(t *testing.T) {
	tree := NewTree()
	tree.Module("repos", "artifacts")
	tree.Module("repos", "branches")
	tree.Module("actions", "cache")

	assert.Equal(t, []string{"actions", "repos"}, tree.Categories())
	assert.Equal(t, []string{"artifacts", "branches"}, tree.Subcategories("repos"))
}
