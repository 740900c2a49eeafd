package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBodyKnown(t *testing.T) {
	kind, err := LookupBody("object or null")
	require.NoError(t, err)
	assert.Equal(t, BodyKindOptionalObject, kind)
	assert.True(t, kind.HasChildWrapper())
}

func TestLookupBodyPrimitiveHasNoChildWrapper(t *testing.T) {
	kind, err := LookupBody("array of strings")
	require.NoError(t, err)
	assert.Equal(t, BodyKindSequenceOfStrings, kind)
	assert.False(t, kind.HasChildWrapper())
}

func TestLookupBodyUnknownFails(t *testing.T) {
	_, err := LookupBody("tuple of mysteries")
	assert.Error(t, err)
}
