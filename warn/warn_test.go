package warn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningsHasAndAppend(t *testing.T) {
	var ws Warnings
	assert.False(t, ws.Has(CodeResponseOverwrite))

	ws.Append(New(CodeResponseOverwrite, "commits.ArtifactResponse", "overwrote earlier declaration"))
	assert.True(t, ws.Has(CodeResponseOverwrite))
	assert.False(t, ws.Has(CodeOpaqueFallback))
	assert.Len(t, ws, 1)
}

func TestWarningString(t *testing.T) {
	w := New(CodeOpaqueFallback, "a.b.c", "no specialization for object|array|string")
	assert.Equal(t, "[OPAQUE_JSON_FALLBACK] a.b.c: no specialization for object|array|string", w.String())
}
