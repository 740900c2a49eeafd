package genconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, PolicyDedupe, cfg.ModuleCollisionPolicy)
	assert.Equal(t, PolicyOverwrite, cfg.ResponseCollisionPolicy)
	assert.Equal(t, "Parameters", cfg.TypeNameSuffixes.Parameters)
}

func TestMergeConfigOnlyOverridesSetFields(t *testing.T) {
	current := DefaultConfig()
	overrides := Config{ResponseCollisionPolicy: PolicyDedupe}

	merged := MergeConfig(current, overrides)
	assert.Equal(t, PolicyDedupe, merged.ResponseCollisionPolicy)
	assert.Equal(t, PolicyDedupe, merged.ModuleCollisionPolicy)
	assert.Equal(t, "Query", merged.TypeNameSuffixes.Query)
}

func TestLoadYAML(t *testing.T) {
	doc := `
response_collision_policy: dedupe
stop_words:
  - via
  - using
type_name_suffixes:
  request: payload
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, PolicyDedupe, cfg.ResponseCollisionPolicy)
	assert.Equal(t, []string{"via", "using"}, cfg.StopWords)
	assert.Equal(t, "payload", cfg.TypeNameSuffixes.Request)
	// untouched default still applies
	assert.Equal(t, "Parameters", cfg.TypeNameSuffixes.Parameters)
}
