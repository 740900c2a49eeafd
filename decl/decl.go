// Package decl models the generator's output vocabulary: lowered-type
// expressions and the two declaration shapes (record, sum) they can
// refer to (spec.md §3).
//
// Grounded on original_source's src/codegen/structs/mod.rs (Struct,
// StructField, Enum, EnumField, Referable, StructName, Description) for
// the declaration shapes and the Referable/tagged-variant polymorphism
// design noted in §9, and on Talav-openapi's internal/model/types.go for
// the style of plain exported fields with per-field doc comments.
package decl

// Type is a lowered-type expression (§3 "Lowered type"): a primitive
// scalar, a wrapper (Optional, Sequence, ObjectOrArray-style union), a
// reference to a named Declaration, or opaque JSON.
type Type struct {
	// Kind selects which of the fields below is meaningful.
	Kind TypeKind
	// Primitive holds the scalar expression when Kind is KindPrimitive
	// (e.g. "integer", "string", "boolean", "float").
	Primitive string
	// Inner holds the wrapped type when Kind is a wrapper kind (Optional,
	// Sequence, ObjectOrArray, ObjectOrString).
	Inner *Type
	// Ref holds the referenced declaration's name when Kind is
	// KindReference.
	Ref string
}

// TypeKind distinguishes the cases of Type.
type TypeKind int

// The lowered-type cases (§3).
const (
	KindPrimitive TypeKind = iota
	KindOptional
	KindSequence
	KindObjectOrArray
	KindObjectOrString
	KindReference
	KindOpaque
)

// String returns the kind's name, used for human-readable rendering.
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindOptional:
		return "optional"
	case KindSequence:
		return "sequence"
	case KindObjectOrArray:
		return "object_or_array"
	case KindObjectOrString:
		return "object_or_string"
	case KindReference:
		return "reference"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Primitive builds a scalar lowered type.
func Primitive(name string) Type { return Type{Kind: KindPrimitive, Primitive: name} }

// Opaque builds the opaque-JSON lowered type (§3, §9 opaque fallback).
func Opaque() Type { return Type{Kind: KindOpaque} }

// Reference builds a lowered type that refers to a named declaration.
func Reference(name string) Type { return Type{Kind: KindReference, Ref: name} }

// Optional wraps a lowered type as nullable. Optional is idempotent in
// practice because callers only ever wrap a freshly lowered type once
// per field (I3) — Optional itself does not collapse nested Optionals,
// since none should ever be constructed.
func Optional(inner Type) Type { return Type{Kind: KindOptional, Inner: &inner} }

// Sequence wraps a lowered type as an ordered repetition.
func Sequence(inner Type) Type { return Type{Kind: KindSequence, Inner: &inner} }

// ObjectOrArray wraps a lowered type for the object|array shape
// combination (§4.2 table).
func ObjectOrArray(inner Type) Type { return Type{Kind: KindObjectOrArray, Inner: &inner} }

// ObjectOrString wraps a lowered type for the object|string shape
// combination (§4.2 table).
func ObjectOrString(inner Type) Type { return Type{Kind: KindObjectOrString, Inner: &inner} }

// String renders a lowered type as a compact, human-readable expression,
// e.g. "Optional<Reference(Tag)>".
func (t Type) String() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive
	case KindReference:
		return "Reference(" + t.Ref + ")"
	case KindOpaque:
		return "Opaque"
	case KindOptional:
		return "Optional<" + t.Inner.String() + ">"
	case KindSequence:
		return "Sequence<" + t.Inner.String() + ">"
	case KindObjectOrArray:
		return "ObjectOrArray<" + t.Inner.String() + ">"
	case KindObjectOrString:
		return "ObjectOrString<" + t.Inner.String() + ">"
	default:
		return "?"
	}
}

// IsOptional reports whether t is already an Optional wrapper, used to
// enforce the no-double-wrap half of the required-field policy (I3).
func (t Type) IsOptional() bool { return t.Kind == KindOptional }

// Declaration is the capability set shared by Record and Sum: every
// top-level named output the lowerer produces implements it (§9
// "Polymorphism over declarations" — a tagged variant rather than an
// open interface).
type Declaration interface {
	// DeclName returns the declaration's unique-within-scope PascalCase
	// name.
	DeclName() string
	declTag()
}

// Field is one member of a Record, in declaration order (I1: SourceName
// is preserved verbatim).
type Field struct {
	SourceName  string
	Type        Type
	Description string
	// Child, if non-empty, names the declaration this field introduced
	// (e.g. a nested object lifted out per I4). Empty if the field's type
	// references no new declaration.
	Child string
}

// Record is a named product type: an ordered list of fields (§3).
type Record struct {
	Name        string
	Description string
	Fields      []Field
}

// DeclName returns the record's name.
func (r *Record) DeclName() string { return r.Name }

func (r *Record) declTag() {}

// Variant is one arm of a Sum, in declaration order. Label is the
// original enum value verbatim; Name is its PascalCase internal
// identifier (§4.3.1: "the label is the original string and whose
// internal name is its PascalCase form").
type Variant struct {
	Label       string
	Name        string
	Payload     *Type
	Description string
	Child       string
}

// Sum is a named tagged union ("enum" in the source vocabulary): an
// ordered list of variants (§3).
type Sum struct {
	Name        string
	Description string
	Variants    []Variant
}

// DeclName returns the sum's name.
func (s *Sum) DeclName() string { return s.Name }

func (s *Sum) declTag() {}
