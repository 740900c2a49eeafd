package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUnknownTokenFails(t *testing.T) {
	_, err := Classify([]string{"string", "bogus"})
	assert.Error(t, err)
}

func TestClassifyUnion(t *testing.T) {
	s, err := Classify([]string{"string", "null"})
	require.NoError(t, err)
	assert.True(t, s.String)
	assert.True(t, s.Null)
	assert.False(t, s.Object)
}

func TestMerge(t *testing.T) {
	a, _ := Classify([]string{"string"})
	b, _ := Classify([]string{"null"})
	m := Merge(a, b)
	assert.True(t, m.String)
	assert.True(t, m.Null)
}

func TestLowerTable(t *testing.T) {
	cases := []struct {
		name  string
		set   Set
		want  Kind
	}{
		{"object", Set{Object: true}, KindInner},
		{"object+null", Set{Object: true, Null: true}, KindOptionalInner},
		{"object+array", Set{Object: true, Array: true}, KindObjectOrArray},
		{"object+array+null", Set{Object: true, Array: true, Null: true}, KindOptionalObjectOrArray},
		{"object+string", Set{Object: true, String: true}, KindObjectOrString},
		{"array", Set{Array: true}, KindSequence},
		{"array+null", Set{Array: true, Null: true}, KindOptionalSequence},
		{"string", Set{String: true}, KindString},
		{"string+null", Set{String: true, Null: true}, KindOptionalString},
		{"integer", Set{Integer: true}, KindInteger},
		{"integer+null", Set{Integer: true, Null: true}, KindOptionalInteger},
		{"boolean", Set{Boolean: true}, KindBoolean},
		{"boolean+null", Set{Boolean: true, Null: true}, KindOptionalBoolean},
		{"string+boolean", Set{String: true, Boolean: true}, KindStringOrBool},
		{"uncovered", Set{Object: true, Array: true, String: true}, KindOpaque},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Lower(c.set), c.name)
	}
}

func TestTokens(t *testing.T) {
	s, _ := Classify([]string{"string", "null"})
	assert.Equal(t, []string{"null", "string"}, s.Tokens())
}
