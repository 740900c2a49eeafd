package lower

import (
	"fmt"
	"strings"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/ingest"
	"github.com/sdkgen/apigen/loweringerr"
	"github.com/sdkgen/apigen/name"
	"github.com/sdkgen/apigen/shape"
)

// LowerBodyRequest lowers an endpoint's bodyParameters list into its
// top-level request record (§4.4.1): named
// `<title-identifier>_<suffix>` in PascalCase (suffix is
// genconfig.Config.TypeNameSuffixes.Request, "request" by default),
// described as "Body parameters for <title lowercased>".
//
// Grounded on original_source's
// src/codegen/body_parameters/mod.rs (BodyParameters::parse).
func (lo *Lowerer) LowerBodyRequest(title, titleIdentifier, suffix string, params []ingest.BodyParameter) (*decl.Record, error) {
	recordName := name.ToTypeName(titleIdentifier + "_" + suffix)

	rec := &decl.Record{
		Name:        recordName,
		Description: fmt.Sprintf("Body parameters for %s", strings.ToLower(title)),
	}

	for _, p := range params {
		fieldType, child, err := lo.lowerBodyParam(recordName, p)
		if err != nil {
			return nil, err
		}

		if !p.Required() && !fieldType.IsOptional() {
			fieldType = decl.Optional(fieldType)
		}

		rec.Fields = append(rec.Fields, decl.Field{
			SourceName:  p.Name,
			Type:        fieldType,
			Description: p.Description,
			Child:       child,
		})
	}

	if err := lo.register(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// decorateBodyKind wraps inner per the body-parameter object-shaped
// kinds. lowerBodyParam calls it for every entry that carries a
// childParamsGroup, whatever its kind; a kind without a child wrapper
// (!kind.HasChildWrapper()) returns inner unwrapped.
func decorateBodyKind(kind shape.BodyKind, inner decl.Type) decl.Type {
	switch kind {
	case shape.BodyKindObject:
		return inner
	case shape.BodyKindOptionalObject:
		return decl.Optional(inner)
	case shape.BodyKindSequenceOfInner:
		return decl.Sequence(inner)
	case shape.BodyKindOptionalSequenceOfInner:
		return decl.Optional(decl.Sequence(inner))
	default:
		return inner
	}
}

// bodyPrimitiveType lowers a childless body-parameter entry's descriptor
// directly to a primitive lowered type.
func bodyPrimitiveType(kind shape.BodyKind) decl.Type {
	switch kind {
	case shape.BodyKindObject:
		return decl.Opaque()
	case shape.BodyKindOptionalObject:
		return decl.Optional(decl.Opaque())
	case shape.BodyKindSequenceOfInner:
		return decl.Sequence(decl.Opaque())
	case shape.BodyKindOptionalSequenceOfInner:
		return decl.Optional(decl.Sequence(decl.Opaque()))
	case shape.BodyKindString:
		return decl.Primitive("string")
	case shape.BodyKindOptionalString:
		return decl.Optional(decl.Primitive("string"))
	case shape.BodyKindNumber:
		return decl.Primitive("float")
	case shape.BodyKindOptionalNumber:
		return decl.Optional(decl.Primitive("float"))
	case shape.BodyKindInteger:
		return decl.Primitive("integer")
	case shape.BodyKindOptionalInteger:
		return decl.Optional(decl.Primitive("integer"))
	case shape.BodyKindBoolean:
		return decl.Primitive("boolean")
	case shape.BodyKindOptionalBoolean:
		return decl.Optional(decl.Primitive("boolean"))
	case shape.BodyKindSequenceOfStrings:
		return decl.Sequence(decl.Primitive("string"))
	case shape.BodyKindOptionalSequenceOfStrings:
		return decl.Optional(decl.Sequence(decl.Primitive("string")))
	case shape.BodyKindSequenceOfIntegers:
		return decl.Sequence(decl.Primitive("integer"))
	case shape.BodyKindBareSequence:
		return decl.Sequence(decl.Opaque())
	case shape.BodyKindStringOrNumber:
		return decl.Primitive("string_or_number")
	case shape.BodyKindStringOrInteger:
		return decl.Primitive("string_or_integer")
	case shape.BodyKindBooleanOrString:
		return decl.Primitive("boolean_or_string")
	case shape.BodyKindObjectOrString:
		return decl.ObjectOrString(decl.Opaque())
	case shape.BodyKindObjectOrArrayOrString:
		return decl.Opaque()
	case shape.BodyKindNullOrStringOrInteger:
		return decl.Optional(decl.Primitive("string_or_integer"))
	case shape.BodyKindNullOrStringOrArray:
		return decl.Optional(decl.ObjectOrArray(decl.Opaque()))
	default:
		return decl.Opaque()
	}
}

func (lo *Lowerer) lowerBodyParam(parentPrefix string, p ingest.BodyParameter) (decl.Type, string, error) {
	kind, err := shape.LookupBody(p.Type)
	if err != nil {
		return decl.Type{}, "", loweringerr.NewNotImplemented(parentPrefix+"."+p.Name, p.Type)
	}

	if len(p.ChildParamsGroup) == 0 {
		return bodyPrimitiveType(kind), "", nil
	}

	// §4.4.1: a non-empty childParamsGroup always introduces a named
	// child record, regardless of what the wrapper kind turns out to be.
	childName := name.ToTypeName(parentPrefix + "_" + p.Name)
	rec := &decl.Record{Name: childName}

	for _, child := range p.ChildParamsGroup {
		childType, grandchild, err := lo.lowerBodyParam(childName, child)
		if err != nil {
			return decl.Type{}, "", err
		}

		if !child.Required() && !childType.IsOptional() {
			childType = decl.Optional(childType)
		}

		rec.Fields = append(rec.Fields, decl.Field{
			SourceName:  child.Name,
			Type:        childType,
			Description: child.Description,
			Child:       grandchild,
		})
	}

	if err := lo.register(rec); err != nil {
		return decl.Type{}, "", err
	}

	return decorateBodyKind(kind, decl.Reference(childName)), childName, nil
}
