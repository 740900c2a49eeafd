// Package ingest defines the Go shape of the raw API schema document
// (§6 External Interfaces) and the thin loaders that turn JSON or YAML
// bytes into it. Deserialization of a known tree shape, and an optional
// shape guard ahead of the lowerer, are the full extent of this package's
// job — ingestion of the document is otherwise an external collaborator
// per spec.md §1.
//
// Grounded on original_source's src/schema package (api.rs, schema.rs,
// parameters.rs, response.rs, body_parameters) for the exact field set;
// Properties iteration there uses a BTreeMap (sorted by key), which this
// package mirrors via SortedPropertyKeys rather than preserving JSON
// insertion order.
package ingest

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Method is the HTTP verb as it appears in the source document (lowercase).
type Method string

// Supported HTTP verbs (§6).
const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
)

// Position is where a parameter is carried: the URL path or the query
// string.
type Position string

// Supported parameter positions (§6).
const (
	PositionQuery Position = "query"
	PositionPath  Position = "path"
)

// IsQuery reports whether the parameter is carried in the query string.
func (p Position) IsQuery() bool { return p == PositionQuery }

// TypeField is a schema node's "type": either a single scalar string or
// an array of strings in the source JSON or YAML, always normalized to a
// slice here.
type TypeField []string

// UnmarshalJSON accepts both a bare string and an array of strings.
func (t *TypeField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeField{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("ingest: type field is neither a string nor an array of strings: %w", err)
	}
	*t = many

	return nil
}

// UnmarshalYAML accepts both a bare string and a sequence of strings.
func (t *TypeField) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*t = TypeField{single}

		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return fmt.Errorf("ingest: type field is neither a string nor a sequence of strings: %w", err)
	}
	*t = many

	return nil
}

// Schema is a JSON-Schema-style node: properties, items, enum,
// oneOf/allOf/anyOf, and a nullable type union. See spec.md §6.
type Schema struct {
	Title       string             `json:"title,omitempty" yaml:"title,omitempty"`
	Type        TypeField          `json:"type,omitempty" yaml:"type,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	// Enum holds the raw enum values; a nil entry represents a JSON null
	// literal, and a non-nil entry may itself be the string "null" (I6,
	// P6: both forms mean the same thing to the enum lowerer).
	Enum  []*string `json:"enum,omitempty" yaml:"enum,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
}

// SortedPropertyKeys returns the schema's property keys in sorted order,
// matching original_source's BTreeMap<String, Schema> iteration order.
func (s *Schema) SortedPropertyKeys() []string {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Parameter is a single path or query parameter (§6).
type Parameter struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	In          Position `json:"in" yaml:"in"`
	Required    *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      Schema   `json:"schema" yaml:"schema"`
}

// IsRequired reports whether the parameter was explicitly marked required.
func (p Parameter) IsRequired() bool { return p.Required != nil && *p.Required }

// BodyParameter is one entry of the descriptive body-parameter dialect
// (§4.4.1, §6). Type is a free-form descriptor from the body-parameter
// vocabulary handled by the shape package.
type BodyParameter struct {
	Name             string          `json:"name" yaml:"name"`
	Type             string          `json:"type" yaml:"type"`
	Description      string          `json:"description" yaml:"description"`
	IsRequired       *bool           `json:"isRequired,omitempty" yaml:"isRequired,omitempty"`
	ChildParamsGroup []BodyParameter `json:"childParamsGroups,omitempty" yaml:"childParamsGroups,omitempty"`
}

// Required reports whether the body parameter was explicitly marked
// required.
func (b BodyParameter) Required() bool { return b.IsRequired != nil && *b.IsRequired }

// Response is one endpoint response example's status code and schema.
type Response struct {
	StatusCode string  `json:"statusCode" yaml:"statusCode"`
	Schema     *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// CodeExample pairs a documentation key with its response (§6).
type CodeExample struct {
	Key      string   `json:"key" yaml:"key"`
	Response Response `json:"response" yaml:"response"`
}

// EndpointSchema is one endpoint descriptor as it appears in the source
// document (§6).
type EndpointSchema struct {
	Title          string          `json:"title" yaml:"title"`
	Category       string          `json:"category" yaml:"category"`
	Subcategory    string          `json:"subcategory" yaml:"subcategory"`
	RequestPath    string          `json:"requestPath" yaml:"requestPath"`
	Verb           Method          `json:"verb" yaml:"verb"`
	Parameters     []Parameter     `json:"parameters" yaml:"parameters"`
	BodyParameters []BodyParameter `json:"bodyParameters" yaml:"bodyParameters"`
	CodeExamples   []CodeExample   `json:"codeExamples" yaml:"codeExamples"`
}

// Source is the top-level document: category -> subcategory -> endpoints.
type Source map[string]map[string][]EndpointSchema
