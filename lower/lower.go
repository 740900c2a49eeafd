// Package lower implements the schema lowerer (spec.md §4.3): the
// stateful recursive walk that turns an ingest.Schema node into a
// decl.Type, lifting nested objects and enums into named declarations as
// it goes and handing them to a caller-supplied registration sink.
//
// Grounded on original_source's src/codegen/schema_parser.rs
// (SchemaParser::parse / parse_properties / parse_one_of_like /
// parse_items / parse_enum) for the dispatch order and the
// zero/one/two-or-more named-alternative branching of union lowering,
// and src/codegen/schema_types.rs for the shape-to-wrapper table consumed
// via the shape package.
package lower

import (
	"fmt"
	"strings"

	"github.com/sdkgen/apigen/decl"
	"github.com/sdkgen/apigen/ingest"
	"github.com/sdkgen/apigen/loweringerr"
	"github.com/sdkgen/apigen/name"
	"github.com/sdkgen/apigen/shape"
	"github.com/sdkgen/apigen/warn"
)

// Sink registers a freshly produced declaration. Implementations decide
// where it lives: module-local (parameters/query/body) or global
// (responses) — see the decltree package.
type Sink func(decl.Declaration) error

// Lowerer is the recursive schema-to-declaration translator. A Lowerer is
// single-use per sink scope but stateless between unrelated Lower calls
// beyond the prefix stack, which is always balanced on return (P4).
type Lowerer struct {
	stack    []string
	Warnings warn.Warnings
	register Sink
}

// New creates a Lowerer that hands every declaration it produces to
// register.
func New(register Sink) *Lowerer {
	return &Lowerer{register: register}
}

func (lo *Lowerer) path() string {
	return strings.Join(lo.stack, ".")
}

// Lower lowers node, naming any anonymous declaration it introduces (or
// its whole result, if node itself resolves to a declaration) from
// prefix. It returns the lowered type, the name of the declaration it
// produced (empty if none), and an error.
//
// The prefix stack depth after Lower returns always equals its depth
// before the call (P4): push and pop are paired on every exit path,
// including error returns, via defer.
func (lo *Lowerer) Lower(prefix string, node *ingest.Schema) (decl.Type, string, error) {
	lo.stack = append(lo.stack, prefix)
	defer func() { lo.stack = lo.stack[:len(lo.stack)-1] }()

	return lo.lowerNode(prefix, node)
}

func (lo *Lowerer) lowerNode(base string, node *ingest.Schema) (decl.Type, string, error) {
	switch {
	case len(node.Enum) > 0:
		return lo.lowerEnum(base, node)
	case len(node.OneOf) > 0:
		return lo.lowerUnion(base, node.OneOf)
	case len(node.AllOf) > 0:
		return lo.lowerUnion(base, node.AllOf)
	case len(node.AnyOf) > 0:
		return lo.lowerUnion(base, node.AnyOf)
	case node.Items != nil:
		return lo.lowerArray(base, node)
	case len(node.Properties) > 0:
		return lo.lowerObject(base, node)
	default:
		t, err := lo.lowerPrimitive(node)

		return t, "", err
	}
}

func (lo *Lowerer) nodeShape(node *ingest.Schema) (shape.Set, error) {
	s, err := shape.Classify(node.Type)
	if err != nil {
		return shape.Set{}, loweringerr.NewInput(lo.path(), err)
	}

	if len(node.Properties) > 0 {
		s.Object = true
	}
	if node.Items != nil {
		s.Array = true
	}

	return s, nil
}

func (lo *Lowerer) lowerPrimitive(node *ingest.Schema) (decl.Type, error) {
	s, err := lo.nodeShape(node)
	if err != nil {
		return decl.Type{}, err
	}

	switch shape.Lower(s) {
	case shape.KindString:
		return decl.Primitive("string"), nil
	case shape.KindOptionalString:
		return decl.Optional(decl.Primitive("string")), nil
	case shape.KindInteger:
		return decl.Primitive("integer"), nil
	case shape.KindOptionalInteger:
		return decl.Optional(decl.Primitive("integer")), nil
	case shape.KindBoolean:
		return decl.Primitive("boolean"), nil
	case shape.KindOptionalBoolean:
		return decl.Optional(decl.Primitive("boolean")), nil
	case shape.KindStringOrBool:
		return decl.Primitive("string_or_bool"), nil
	default:
		lo.Warnings.Append(warn.New(warn.CodeOpaqueFallback, lo.path(),
			fmt.Sprintf("no specialization for shape %v", s.Tokens())))

		return decl.Opaque(), nil
	}
}

// decorateByKind applies the wrapper a shape.Kind calls for around inner.
// Shared by array lowering and the "exactly one named alternative" union
// case (§4.3.2, §4.3.3).
func decorateByKind(kind shape.Kind, inner decl.Type) decl.Type {
	switch kind {
	case shape.KindInner:
		return inner
	case shape.KindOptionalInner:
		return decl.Optional(inner)
	case shape.KindObjectOrArray:
		return decl.ObjectOrArray(inner)
	case shape.KindOptionalObjectOrArray:
		return decl.Optional(decl.ObjectOrArray(inner))
	case shape.KindObjectOrString:
		return decl.ObjectOrString(inner)
	case shape.KindSequence:
		return decl.Sequence(inner)
	case shape.KindOptionalSequence:
		return decl.Optional(decl.Sequence(inner))
	default:
		return inner
	}
}

func (lo *Lowerer) lowerArray(base string, node *ingest.Schema) (decl.Type, string, error) {
	s, err := lo.nodeShape(node)
	if err != nil {
		return decl.Type{}, "", err
	}

	inner, child, err := lo.Lower(base, node.Items)
	if err != nil {
		return decl.Type{}, "", err
	}

	return decorateByKind(shape.Lower(s), inner), child, nil
}

func (lo *Lowerer) lowerObject(base string, node *ingest.Schema) (decl.Type, string, error) {
	recordName := base
	if node.Title != "" {
		recordName = node.Title
	}

	rec := &decl.Record{Name: recordName, Description: name.StripHTML(node.Description)}

	required := make(map[string]bool, len(node.Required))
	for _, r := range node.Required {
		required[r] = true
	}

	for _, key := range node.SortedPropertyKeys() {
		prop := node.Properties[key]
		childBase := recordName + name.ToTypeName(key)

		fieldType, child, err := lo.Lower(childBase, prop)
		if err != nil {
			return decl.Type{}, "", err
		}

		// I3: required-field policy, idempotent.
		if !required[key] && !fieldType.IsOptional() {
			fieldType = decl.Optional(fieldType)
		}

		rec.Fields = append(rec.Fields, decl.Field{
			SourceName:  key,
			Type:        fieldType,
			Description: name.StripHTML(prop.Description),
			Child:       child,
		})
	}

	if err := lo.register(rec); err != nil {
		return decl.Type{}, "", err
	}

	return decl.Reference(recordName), recordName, nil
}

func (lo *Lowerer) lowerEnum(base string, node *ingest.Schema) (decl.Type, string, error) {
	sumName := base
	if node.Title != "" {
		sumName = node.Title
	}

	sum := &decl.Sum{Name: sumName, Description: name.StripHTML(node.Description)}

	optional := false

	for _, v := range node.Enum {
		// I6, P6: a null entry (literal JSON null or the string "null")
		// sets the optional flag instead of becoming a variant.
		if v == nil || *v == "null" {
			optional = true

			continue
		}

		sum.Variants = append(sum.Variants, decl.Variant{
			Label: *v,
			Name:  name.ToTypeName(*v),
		})
	}

	if err := lo.register(sum); err != nil {
		return decl.Type{}, "", err
	}

	if optional {
		return decl.Optional(decl.Reference(sumName)), sumName, nil
	}

	return decl.Reference(sumName), sumName, nil
}

func isNullLiteral(node *ingest.Schema) bool {
	if len(node.Properties) > 0 || node.Items != nil || len(node.Enum) > 0 {
		return false
	}

	return len(node.Type) == 1 && node.Type[0] == "null"
}

func primitiveLabel(t decl.Type) string {
	switch t.Kind {
	case decl.KindPrimitive:
		return name.ToTypeName(t.Primitive)
	case decl.KindOpaque:
		return "Json"
	default:
		return "Value"
	}
}

func (lo *Lowerer) lowerUnion(base string, alts []*ingest.Schema) (decl.Type, string, error) {
	type altResult struct {
		typ    decl.Type
		child  string
		isNull bool
	}

	results := make([]altResult, 0, len(alts))

	var merged shape.Set

	for _, alt := range alts {
		if isNullLiteral(alt) {
			merged.Null = true
			results = append(results, altResult{isNull: true})

			continue
		}

		s, err := lo.nodeShape(alt)
		if err != nil {
			return decl.Type{}, "", err
		}
		merged = shape.Merge(merged, s)

		t, child, err := lo.Lower(base, alt)
		if err != nil {
			return decl.Type{}, "", err
		}

		results = append(results, altResult{typ: t, child: child})
	}

	named := 0
	for _, r := range results {
		if r.child != "" {
			named++
		}
	}

	switch named {
	case 0:
		switch shape.Lower(merged) {
		case shape.KindString:
			return decl.Primitive("string"), "", nil
		case shape.KindOptionalString:
			return decl.Optional(decl.Primitive("string")), "", nil
		case shape.KindInteger:
			return decl.Primitive("integer"), "", nil
		case shape.KindOptionalInteger:
			return decl.Optional(decl.Primitive("integer")), "", nil
		case shape.KindBoolean:
			return decl.Primitive("boolean"), "", nil
		case shape.KindOptionalBoolean:
			return decl.Optional(decl.Primitive("boolean")), "", nil
		case shape.KindStringOrBool:
			return decl.Primitive("string_or_bool"), "", nil
		default:
			lo.Warnings.Append(warn.New(warn.CodeOpaqueFallback, lo.path(),
				fmt.Sprintf("no specialization for union shape %v", merged.Tokens())))

			return decl.Opaque(), "", nil
		}

	case 1:
		var single altResult
		for _, r := range results {
			if r.child != "" {
				single = r
			}
		}

		return decorateByKind(shape.Lower(merged), single.typ), single.child, nil

	default:
		sum := &decl.Sum{Name: base}

		for _, r := range results {
			switch {
			case r.isNull:
				// already folded into merged.Null, skip.
				continue
			case r.child != "":
				sum.Variants = append(sum.Variants, decl.Variant{
					Label:   r.child,
					Name:    r.child,
					Payload: refType(decl.Reference(r.child)),
					Child:   r.child,
				})
			default:
				sum.Variants = append(sum.Variants, decl.Variant{
					Label:   primitiveLabel(r.typ),
					Name:    primitiveLabel(r.typ),
					Payload: refType(r.typ),
				})
			}
		}

		if err := lo.register(sum); err != nil {
			return decl.Type{}, "", err
		}

		if merged.Null {
			return decl.Optional(decl.Reference(base)), base, nil
		}

		return decl.Reference(base), base, nil
	}
}

func refType(t decl.Type) *decl.Type { return &t }
