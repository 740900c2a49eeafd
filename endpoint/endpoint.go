// Package endpoint assembles the per-operation record the generator
// emits one of per REST endpoint (spec.md §4.5): a name, an HTTP method,
// a path template, and up to four optional declaration references.
//
// Grounded on original_source's src/codegen/parsed/api.rs (ParsedAPI)
// for the field set and naming conventions ({Title}Query,
// {Title}Parameters, body request, {Title}Response), and src/schema/
// api.rs (Method) for the HTTP verb enum.
package endpoint

import "github.com/sdkgen/apigen/decl"

// Method is the HTTP verb of a generated endpoint (§3).
type Method string

// The supported HTTP methods (§3).
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Endpoint is one callable REST operation (§3). Parameters, Query, Body
// and Response are nil when the source endpoint carried none of the
// corresponding input (no path/query parameters, no body, no response
// schema in the first code example).
type Endpoint struct {
	Name       string
	Method     Method
	Path       string
	Parameters *decl.Record
	Query      *decl.Record
	Body       decl.Declaration
	Response   decl.Declaration
}
