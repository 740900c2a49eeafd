package lower

import (
	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/ingest"
	"github.com/sdkgen/apigen/name"
)

// LowerParameterGroup lowers one position-partitioned group of endpoint
// parameters (path or query) into a single record (§4.4): recordName is
// already composed as `<Title>Parameters` or `<Title>Query` by the
// caller.
func (lo *Lowerer) LowerParameterGroup(recordName string, params []ingest.Parameter) (*decl.Record, error) {
	rec := &decl.Record{Name: recordName}

	for _, p := range params {
		schema := p.Schema

		fieldType, child, err := lo.Lower(recordName+name.ToTypeName(p.Name), &schema)
		if err != nil {
			return nil, err
		}

		if !p.IsRequired() && !fieldType.IsOptional() {
			fieldType = decl.Optional(fieldType)
		}

		rec.Fields = append(rec.Fields, decl.Field{
			SourceName:  p.Name,
			Type:        fieldType,
			Description: name.StripHTML(p.Description),
			Child:       child,
		})
	}

	if err := lo.register(rec); err != nil {
		return nil, err
	}

	return rec, nil
}
