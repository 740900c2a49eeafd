package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalWrapsOnce(t *testing.T) {
	inner := Primitive("string")
	opt := Optional(inner)

	assert.True(t, opt.IsOptional())
	assert.False(t, inner.IsOptional())
	assert.Equal(t, "string", opt.Inner.Primitive)
}

func TestRecordImplementsDeclaration(t *testing.T) {
	var d Declaration = &Record{Name: "Tag", Fields: []Field{{SourceName: "name", Type: Primitive("string")}}}
	assert.Equal(t, "Tag", d.DeclName())
}

func TestSumImplementsDeclaration(t *testing.T) {
	var d Declaration = &Sum{Name: "ResponseState", Variants: []Variant{{Label: "open"}, {Label: "closed"}}}
	assert.Equal(t, "ResponseState", d.DeclName())
	assert.Len(t, d.(*Sum).Variants, 2)
}

func TestReferenceAndOpaque(t *testing.T) {
	ref := Reference("Tag")
	assert.Equal(t, KindReference, ref.Kind)
	assert.Equal(t, "Tag", ref.Ref)

	op := Opaque()
	assert.Equal(t, KindOpaque, op.Kind)
}
