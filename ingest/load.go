package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// docSchemaURL is the synthetic resource name the shape guard is compiled
// under; it never resolves over the network, it only anchors the
// in-memory resource added via AddResource.
const docSchemaURL = "mem://apigen/source-document.json"

// docMetaSchema is a coarse shape guard for the top-level document: it
// only checks that category/subcategory nest into arrays of endpoint
// objects with the right field names and verb enum. It is deliberately
// not a general JSON Schema validator (Non-goal, §10) — it never inspects
// the endpoint's own parameter/body/response schema nodes, which are the
// lowerer's job.
const docMetaSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"additionalProperties": {
			"type": "array",
			"items": { "$ref": "#/$defs/endpoint" }
		}
	},
	"$defs": {
		"endpoint": {
			"type": "object",
			"required": ["title", "category", "subcategory", "requestPath", "verb"],
			"properties": {
				"title": { "type": "string" },
				"category": { "type": "string" },
				"subcategory": { "type": "string" },
				"requestPath": { "type": "string" },
				"verb": { "enum": ["get", "post", "put", "patch", "delete"] },
				"parameters": { "type": "array" },
				"bodyParameters": { "type": "array" },
				"codeExamples": { "type": "array" }
			}
		}
	}
}`

// Guard compiles the document shape guard once; a nil *Guard skips
// shape-guard validation entirely.
type Guard struct {
	schema *jsonschema.Schema
}

// NewGuard compiles the coarse document shape guard.
func NewGuard() (*Guard, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(docSchemaURL, bytes.NewReader([]byte(docMetaSchema))); err != nil {
		return nil, fmt.Errorf("ingest: compiling shape guard: %w", err)
	}

	sch, err := compiler.Compile(docSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("ingest: compiling shape guard: %w", err)
	}

	return &Guard{schema: sch}, nil
}

// Validate checks raw document bytes against the shape guard.
func (g *Guard) Validate(raw []byte) error {
	if g == nil {
		return nil
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("ingest: decoding document for shape guard: %w", err)
	}

	if err := g.schema.Validate(inst); err != nil {
		return fmt.Errorf("ingest: document failed shape guard: %w", err)
	}

	return nil
}

// Load decodes a JSON source document. When guard is non-nil, the raw
// bytes are checked against the coarse document shape guard first.
func Load(r io.Reader, guard *Guard) (Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading document: %w", err)
	}

	if err := guard.Validate(raw); err != nil {
		return nil, err
	}

	var src Source
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("ingest: decoding JSON document: %w", err)
	}

	return src, nil
}

// LoadYAML decodes a YAML-authored source document, the alternate
// ingestion format the domain stack adds alongside the original's JSON
// (§2 Domain Stack). The shape guard still runs, against the document
// re-encoded as JSON, since the guard only understands JSON Schema.
func LoadYAML(r io.Reader, guard *Guard) (Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading document: %w", err)
	}

	var src Source
	if err := yaml.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("ingest: decoding YAML document: %w", err)
	}

	if guard != nil {
		asJSON, err := json.Marshal(src)
		if err != nil {
			return nil, fmt.Errorf("ingest: re-encoding YAML document for shape guard: %w", err)
		}

		if err := guard.Validate(asJSON); err != nil {
			return nil, err
		}
	}

	return src, nil
}
