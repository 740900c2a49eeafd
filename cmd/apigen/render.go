package main

import (
	"fmt"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/decltree"
	"github.com/sdkgen/apigen/endpoint"
)

// render prints a plain-text walk of the declaration tree: one block per
// module (its endpoints and local declarations), followed by the global
// response table. It exists to make the lowering pipeline observable
// from the CLI, not as a stand-in for source-text emission.
func render(tree *decltree.Tree) {
	for _, category := range tree.Categories() {
		for _, subcategory := range tree.Subcategories(category) {
			mod := tree.Module(category, subcategory)
			fmt.Printf("== %s/%s ==\n", category, subcategory)

			for _, ep := range mod.Endpoints {
				renderEndpoint(ep)
			}

			for _, d := range mod.Declarations() {
				renderDeclaration("  ", d)
			}
		}
	}

	globals := tree.GlobalDeclarations()
	if len(globals) > 0 {
		fmt.Println("== responses ==")

		for _, d := range globals {
			renderDeclaration("  ", d)
		}
	}
}

func renderEndpoint(e *endpoint.Endpoint) {
	fmt.Printf("  %s %s -> %s\n", e.Method, e.Path, e.Name)

	if e.Parameters != nil {
		fmt.Printf("    parameters: %s\n", e.Parameters.Name)
	}
	if e.Query != nil {
		fmt.Printf("    query: %s\n", e.Query.Name)
	}
	if e.Body != nil {
		fmt.Printf("    body: %s\n", e.Body.DeclName())
	}
	if e.Response != nil {
		fmt.Printf("    response: %s\n", e.Response.DeclName())
	}
}

func renderDeclaration(indent string, d decl.Declaration) {
	switch v := d.(type) {
	case *decl.Record:
		fmt.Printf("%srecord %s\n", indent, v.Name)

		for _, f := range v.Fields {
			fmt.Printf("%s  %s: %s\n", indent, f.SourceName, f.Type.String())
		}
	case *decl.Sum:
		fmt.Printf("%ssum %s\n", indent, v.Name)

		for _, variant := range v.Variants {
			fmt.Printf("%s  %s (%s)\n", indent, variant.Label, variant.Name)
		}
	}
}
