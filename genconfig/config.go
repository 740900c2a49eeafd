// Package genconfig holds the generator's tunable policy knobs and loads
// them from a YAML config file with mapstructure-based decoding.
//
// Grounded on Talav-openapi's config/tags.go (TagConfig, DefaultTagConfig,
// MergeTagConfig) for the partial-config-over-defaults merge pattern.
package genconfig

import (
	"fmt"
	"io"

	"github.com/talav/mapstructure"
	"gopkg.in/yaml.v3"
)

// CollisionPolicy controls how the registrar reacts to a name collision
// (§4.6).
type CollisionPolicy string

// The two collision policies the registrar understands.
const (
	// PolicyDedupe merges structurally identical declarations and warns;
	// a structural mismatch is still a hard error.
	PolicyDedupe CollisionPolicy = "dedupe"
	// PolicyOverwrite replaces the earlier declaration without an error and
	// records a warning.
	// This is the historical global-response-table behavior (§9).
	PolicyOverwrite CollisionPolicy = "overwrite"
)

// Config holds the generator's policy knobs.
type Config struct {
	// StopWords are the extra articles/fillers stripped by to-identifier
	// beyond the built-in {a, an, the}.
	StopWords []string `mapstructure:"stop_words" yaml:"stop_words"`
	// ModuleCollisionPolicy governs module-local declaration collisions
	// (§4.6). Defaults to PolicyDedupe; PolicyOverwrite makes a later
	// module-local declaration replace an earlier one of the same name.
	ModuleCollisionPolicy CollisionPolicy `mapstructure:"module_collision_policy" yaml:"module_collision_policy"`
	// ResponseCollisionPolicy governs the global response table (§4.6,
	// §9's open question). Defaults to PolicyOverwrite, matching the
	// historical behavior the spec describes.
	ResponseCollisionPolicy CollisionPolicy `mapstructure:"response_collision_policy" yaml:"response_collision_policy"`
	// TypeNameSuffixes names the conventional suffix appended for each
	// declaration role, used by the endpoint/module assembly to compose
	// {Title}Parameters / {Title}Query / {title}_request names.
	TypeNameSuffixes SuffixConfig `mapstructure:"type_name_suffixes" yaml:"type_name_suffixes"`
}

// SuffixConfig names the per-role declaration suffixes (§4.4).
type SuffixConfig struct {
	Parameters string `mapstructure:"parameters" yaml:"parameters"`
	Query      string `mapstructure:"query" yaml:"query"`
	Request    string `mapstructure:"request" yaml:"request"`
	Response   string `mapstructure:"response" yaml:"response"`
}

// DefaultConfig returns the generator's built-in defaults.
func DefaultConfig() Config {
	return Config{
		StopWords:               nil,
		ModuleCollisionPolicy:   PolicyDedupe,
		ResponseCollisionPolicy: PolicyOverwrite,
		TypeNameSuffixes: SuffixConfig{
			Parameters: "Parameters",
			Query:      "Query",
			Request:    "request",
			Response:   "Response",
		},
	}
}

// MergeConfig overlays overrides on top of current, field by field: a
// zero-value field in overrides leaves current's value untouched.
func MergeConfig(current, overrides Config) Config {
	merged := current

	if len(overrides.StopWords) > 0 {
		merged.StopWords = overrides.StopWords
	}
	if overrides.ModuleCollisionPolicy != "" {
		merged.ModuleCollisionPolicy = overrides.ModuleCollisionPolicy
	}
	if overrides.ResponseCollisionPolicy != "" {
		merged.ResponseCollisionPolicy = overrides.ResponseCollisionPolicy
	}
	if overrides.TypeNameSuffixes.Parameters != "" {
		merged.TypeNameSuffixes.Parameters = overrides.TypeNameSuffixes.Parameters
	}
	if overrides.TypeNameSuffixes.Query != "" {
		merged.TypeNameSuffixes.Query = overrides.TypeNameSuffixes.Query
	}
	if overrides.TypeNameSuffixes.Request != "" {
		merged.TypeNameSuffixes.Request = overrides.TypeNameSuffixes.Request
	}
	if overrides.TypeNameSuffixes.Response != "" {
		merged.TypeNameSuffixes.Response = overrides.TypeNameSuffixes.Response
	}

	return merged
}

// Load decodes a YAML config document into a loosely-typed map first
// (gopkg.in/yaml.v3), then strongly-types it via mapstructure, and merges
// it on top of DefaultConfig.
func Load(r io.Reader) (Config, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("genconfig: decoding YAML: %w", err)
	}

	var overrides Config
	if err := mapstructure.Decode(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("genconfig: decoding config fields: %w", err)
	}

	return MergeConfig(DefaultConfig(), overrides), nil
}
