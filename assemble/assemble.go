// Package assemble drives the endpoint lowerer (spec.md §4.4, §4.5):
// for each endpoint in a source document, it partitions parameters by
// position, lowers parameters/query/body into module-local declarations,
// lowers the first code example's response schema into the global
// table, and produces the endpoint's Endpoint record.
//
// Grounded on original_source's src/codegen/mod.rs (Codegen::parse) for
// the category/subcategory/endpoint walk and the module-local vs.
// global registration split, and src/codegen/parsed/api.rs (ParsedAPI,
// `From<APISchema>`) for the per-endpoint assembly steps.
package assemble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/decltree"
	"github.com/sdkgen/apigen/endpoint"
	"github.com/sdkgen/apigen/genconfig"
	"github.com/sdkgen/apigen/ingest"
	"github.com/sdkgen/apigen/lower"
	"github.com/sdkgen/apigen/name"
	"github.com/sdkgen/apigen/warn"
)

// Result is the output of a full source-document lowering pass.
type Result struct {
	Tree     *decltree.Tree
	Warnings warn.Warnings
}

// BuildTree walks every category/subcategory/endpoint in src in sorted
// order (deterministic regardless of Go's randomized map iteration) and
// returns the fully populated declaration tree. cfg supplies the policy
// knobs (§2.3): collision policies, declaration-name suffixes, and
// to-identifier stop words.
func BuildTree(src ingest.Source, cfg genconfig.Config) (Result, error) {
	tree := decltree.NewTree()

	var warnings warn.Warnings

	for _, category := range sortedKeys(src) {
		subcategories := src[category]

		for _, subcategory := range sortedKeys(subcategories) {
			mod := tree.Module(category, subcategory)

			for _, ep := range subcategories[subcategory] {
				e, err := buildEndpoint(tree, mod, ep, cfg, &warnings)
				if err != nil {
					return Result{}, fmt.Errorf("assemble: %s/%s/%s: %w", category, subcategory, ep.Title, err)
				}

				mod.AddEndpoint(e)
			}
		}
	}

	return Result{Tree: tree, Warnings: warnings}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func buildEndpoint(tree *decltree.Tree, mod *decltree.Module, ep ingest.EndpointSchema, cfg genconfig.Config, warnings *warn.Warnings) (*endpoint.Endpoint, error) {
	operationName := name.ToIdentifier(ep.Title, cfg.StopWords...)
	// typeName composes Parameters/Query/Response names from the
	// identifier form rather than the raw title (original_source's
	// `format!("{}Parameters", api_schema.title)` uses the title
	// directly), keeping the three names internally consistent with the
	// identifier-derived operation name.
	typeName := name.ToTypeName(operationName)

	e := &endpoint.Endpoint{
		Name:   operationName,
		Method: endpoint.Method(strings.ToUpper(string(ep.Verb))),
		Path:   ep.RequestPath,
	}

	var pathParams, queryParams []ingest.Parameter

	for _, p := range ep.Parameters {
		if p.In.IsQuery() {
			queryParams = append(queryParams, p)
		} else {
			pathParams = append(pathParams, p)
		}
	}

	suffixes := cfg.TypeNameSuffixes

	moduleLowerer := lower.New(func(d decl.Declaration) error {
		return mod.Register(d, cfg.ModuleCollisionPolicy, warnings)
	})

	if len(pathParams) > 0 {
		rec, err := moduleLowerer.LowerParameterGroup(typeName+suffixes.Parameters, pathParams)
		if err != nil {
			return nil, err
		}

		e.Parameters = rec
	}

	if len(queryParams) > 0 {
		rec, err := moduleLowerer.LowerParameterGroup(typeName+suffixes.Query, queryParams)
		if err != nil {
			return nil, err
		}

		e.Query = rec
	}

	if len(ep.BodyParameters) > 0 {
		rec, err := moduleLowerer.LowerBodyRequest(ep.Title, operationName, suffixes.Request, ep.BodyParameters)
		if err != nil {
			return nil, err
		}

		e.Body = rec
	}

	*warnings = append(*warnings, moduleLowerer.Warnings...)

	if len(ep.CodeExamples) > 0 && ep.CodeExamples[0].Response.Schema != nil {
		responseLowerer := lower.New(func(d decl.Declaration) error {
			return tree.RegisterGlobal(d, cfg.ResponseCollisionPolicy, warnings)
		})

		_, child, err := responseLowerer.Lower(typeName+suffixes.Response, ep.CodeExamples[0].Response.Schema)
		if err != nil {
			return nil, err
		}

		*warnings = append(*warnings, responseLowerer.Warnings...)

		if child != "" {
			if d, ok := tree.LookupGlobal(child); ok {
				e.Response = d
			}
		}
	}

	return e, nil
}
