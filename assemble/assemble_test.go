package assemble

import (
	"testing"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/genconfig"
	"github.com/sdkgen/apigen/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolp(b bool) *bool { return &b }

// S6: distinct path-parameters and query declarations.
func TestBuildTreeParametersAndQueryS6(t *testing.T) {
	src := ingest.Source{
		"repos": {
			"artifacts": []ingest.EndpointSchema{
				{
					Title:       "List artifacts for a repository",
					Category:    "repos",
					Subcategory: "artifacts",
					RequestPath: "/repos/{owner}/{repo}/actions/artifacts",
					Verb:        ingest.MethodGet,
					Parameters: []ingest.Parameter{
						{Name: "owner", In: ingest.PositionPath, Required: boolp(true), Schema: ingest.Schema{Type: ingest.TypeField{"string"}}},
						{Name: "repo", In: ingest.PositionPath, Required: boolp(true), Schema: ingest.Schema{Type: ingest.TypeField{"string"}}},
						{Name: "per_page", In: ingest.PositionQuery, Schema: ingest.Schema{Type: ingest.TypeField{"integer"}}},
					},
				},
			},
		},
	}

	result, err := BuildTree(src, genconfig.DefaultConfig())
	require.NoError(t, err)

	mod := result.Tree.Module("repos", "artifacts")
	require.Len(t, mod.Endpoints, 1)

	ep := mod.Endpoints[0]
	assert.Equal(t, "list_artifacts", ep.Name)
	require.NotNil(t, ep.Parameters)
	require.NotNil(t, ep.Query)
	assert.Equal(t, "ListArtifactsParameters", ep.Parameters.Name)
	assert.Equal(t, "ListArtifactsQuery", ep.Query.Name)
	assert.Len(t, ep.Parameters.Fields, 2)
	require.Len(t, ep.Query.Fields, 1)
	assert.True(t, ep.Query.Fields[0].Type.IsOptional())

	for _, f := range ep.Parameters.Fields {
		assert.False(t, f.Type.IsOptional())
	}
}

func TestBuildTreeResponseGoesGlobal(t *testing.T) {
	src := ingest.Source{
		"repos": {
			"artifacts": []ingest.EndpointSchema{
				{
					Title:       "Get an artifact",
					Category:    "repos",
					Subcategory: "artifacts",
					RequestPath: "/repos/{owner}/{repo}/actions/artifacts/{artifact_id}",
					Verb:        ingest.MethodGet,
					CodeExamples: []ingest.CodeExample{
						{
							Key: "default",
							Response: ingest.Response{
								StatusCode: "200",
								Schema: &ingest.Schema{
									Type: ingest.TypeField{"object"},
									Properties: map[string]*ingest.Schema{
										"id": {Type: ingest.TypeField{"integer"}},
									},
									Required: []string{"id"},
								},
							},
						},
					},
				},
			},
		},
	}

	result, err := BuildTree(src, genconfig.DefaultConfig())
	require.NoError(t, err)

	ep := result.Tree.Module("repos", "artifacts").Endpoints[0]
	require.NotNil(t, ep.Response)
	assert.Equal(t, "GetAnArtifactResponse", ep.Response.DeclName())

	_, ok := result.Tree.LookupGlobal("GetAnArtifactResponse")
	assert.True(t, ok)
}

// Config knobs actually influence assembly: a custom TypeNameSuffixes
// renames the per-role declarations, and StopWords feeds into the
// identifier used to derive them.
func TestBuildTreeHonorsConfigSuffixesAndStopWords(t *testing.T) {
	src := ingest.Source{
		"repos": {
			"artifacts": []ingest.EndpointSchema{
				{
					Title:       "List my artifacts",
					Category:    "repos",
					Subcategory: "artifacts",
					RequestPath: "/repos/{owner}/{repo}/actions/artifacts",
					Verb:        ingest.MethodGet,
					Parameters: []ingest.Parameter{
						{Name: "owner", In: ingest.PositionPath, Required: boolp(true), Schema: ingest.Schema{Type: ingest.TypeField{"string"}}},
					},
				},
			},
		},
	}

	cfg := genconfig.DefaultConfig()
	cfg.StopWords = []string{"my "}
	cfg.TypeNameSuffixes.Parameters = "Params"

	result, err := BuildTree(src, cfg)
	require.NoError(t, err)

	ep := result.Tree.Module("repos", "artifacts").Endpoints[0]
	assert.Equal(t, "list_artifacts", ep.Name)
	require.NotNil(t, ep.Parameters)
	assert.Equal(t, "ListArtifactsParams", ep.Parameters.Name)
}

// ModuleCollisionPolicy: overwrite lets two colliding module-local
// declarations replace one another instead of erroring, with the module
// registrar honoring the configured policy end to end.
func TestBuildTreeHonorsModuleCollisionPolicyOverwrite(t *testing.T) {
	src := ingest.Source{
		"repos": {
			"artifacts": []ingest.EndpointSchema{
				{
					Title:       "Get thing",
					Category:    "repos",
					Subcategory: "artifacts",
					RequestPath: "/first",
					Verb:        ingest.MethodGet,
					Parameters: []ingest.Parameter{
						{Name: "a", In: ingest.PositionPath, Required: boolp(true), Schema: ingest.Schema{Type: ingest.TypeField{"string"}}},
					},
				},
				{
					Title:       "Get thing",
					Category:    "repos",
					Subcategory: "artifacts",
					RequestPath: "/second",
					Verb:        ingest.MethodGet,
					Parameters: []ingest.Parameter{
						{Name: "b", In: ingest.PositionPath, Required: boolp(true), Schema: ingest.Schema{Type: ingest.TypeField{"integer"}}},
					},
				},
			},
		},
	}

	// Same operation title twice with structurally different path
	// parameters collides under the default dedupe-or-error policy.
	_, err := BuildTree(src, genconfig.DefaultConfig())
	assert.Error(t, err)

	cfg := genconfig.DefaultConfig()
	cfg.ModuleCollisionPolicy = genconfig.PolicyOverwrite

	result, err := BuildTree(src, cfg)
	require.NoError(t, err)

	mod := result.Tree.Module("repos", "artifacts")
	rec, ok := mod.Lookup("GetThingParameters")
	require.True(t, ok)
	assert.Equal(t, "b", rec.(*decl.Record).Fields[0].SourceName)
}
