package shape

import "fmt"

// BodyKind identifies how a body-parameter descriptor (the free-form
// "type" string in the body-parameter dialect, §4.4.1, §6) should be
// lowered. Where a BodyKind wraps an Inner, the caller supplies that
// Inner only when the entry carries a non-empty childParamsGroup — a
// BodyKind with no child group is already a complete primitive leaf.
//
// Grounded on original_source's
// src/codegen/body_parameters/generated_struct.rs (GeneratedStruct::
// to_full_type), which enumerates this exact vocabulary.
type BodyKind int

// The body-parameter vocabulary (§4.2 "Body-parameter variant").
const (
	BodyKindUnknown BodyKind = iota
	BodyKindObject
	BodyKindOptionalObject
	BodyKindSequenceOfInner
	BodyKindOptionalSequenceOfInner
	BodyKindString
	BodyKindOptionalString
	BodyKindNumber
	BodyKindOptionalNumber
	BodyKindInteger
	BodyKindOptionalInteger
	BodyKindBoolean
	BodyKindOptionalBoolean
	BodyKindSequenceOfStrings
	BodyKindOptionalSequenceOfStrings
	BodyKindSequenceOfIntegers
	BodyKindBareSequence
	BodyKindStringOrNumber
	BodyKindStringOrInteger
	BodyKindBooleanOrString
	BodyKindObjectOrString
	BodyKindObjectOrArrayOrString
	BodyKindNullOrStringOrInteger
	BodyKindNullOrStringOrArray
)

// bodyVocabulary maps each recognized descriptor to its BodyKind. Keys
// are lowercase and match the descriptive strings the source document
// uses for bodyParameters[].type.
var bodyVocabulary = map[string]BodyKind{
	"object":                      BodyKindObject,
	"object or null":              BodyKindOptionalObject,
	"array of objects":            BodyKindSequenceOfInner,
	"array of objects or null":    BodyKindOptionalSequenceOfInner,
	"string":                      BodyKindString,
	"string or null":              BodyKindOptionalString,
	"number":                      BodyKindNumber,
	"number or null":              BodyKindOptionalNumber,
	"integer":                     BodyKindInteger,
	"integer or null":             BodyKindOptionalInteger,
	"boolean":                     BodyKindBoolean,
	"boolean or null":             BodyKindOptionalBoolean,
	"array of strings":            BodyKindSequenceOfStrings,
	"array of strings or null":    BodyKindOptionalSequenceOfStrings,
	"array of integers":           BodyKindSequenceOfIntegers,
	"array":                       BodyKindBareSequence,
	"string or number":            BodyKindStringOrNumber,
	"string or integer":           BodyKindStringOrInteger,
	"boolean or string":           BodyKindBooleanOrString,
	"object or string":            BodyKindObjectOrString,
	"object or array or string":   BodyKindObjectOrArrayOrString,
	"null or string or integer":   BodyKindNullOrStringOrInteger,
	"null or string or array":     BodyKindNullOrStringOrArray,
}

// LookupBody resolves a body-parameter descriptor to its BodyKind. An
// unrecognized descriptor is the "not-yet-implemented" error kind (§7):
// the body-parameter dialect is a closed vocabulary, unlike the
// open-ended JSON-Schema "type" lowering, so there is no opaque fallback
// here.
func LookupBody(descriptor string) (BodyKind, error) {
	kind, ok := bodyVocabulary[descriptor]
	if !ok {
		return BodyKindUnknown, fmt.Errorf("shape: unsupported body-parameter descriptor %q", descriptor)
	}

	return kind, nil
}

// HasChildWrapper reports whether kind is one that wraps a nested record
// (object-shaped, with or without Optional/Sequence decoration) as
// opposed to being a complete primitive leaf on its own.
func (k BodyKind) HasChildWrapper() bool {
	switch k {
	case BodyKindObject, BodyKindOptionalObject, BodyKindSequenceOfInner, BodyKindOptionalSequenceOfInner:
		return true
	default:
		return false
	}
}
