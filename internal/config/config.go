// Package config loads and validates bmerge's ".bmerge.yaml" configuration
// file: default conflict-marker strings, the default maximum input size, and
// per-path profile overrides.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/bmerge/internal/configschema"
	"go.jacobcolvin.com/bmerge/internal/configvalidate"
	"go.jacobcolvin.com/bmerge/internal/filepaths"
	"go.jacobcolvin.com/bmerge/internal/profile"
	"go.jacobcolvin.com/bmerge/internal/profile/loader"
	"go.jacobcolvin.com/bmerge/internal/profile/matcher"
	"go.jacobcolvin.com/bmerge/internal/profile/registry"
)

// DefaultFileName is the conventional name of a bmerge config file.
const DefaultFileName = ".bmerge.yaml"

// Config is the decoded contents of a ".bmerge.yaml" file.
type Config struct {
	// MarkerBegin overrides the default "<<<<<<<" conflict marker.
	MarkerBegin string `json:"markerBegin,omitempty" jsonschema:"title=Conflict begin marker" yaml:"markerBegin,omitempty"`

	// MarkerSep overrides the default "=======" conflict marker.
	MarkerSep string `json:"markerSep,omitempty" jsonschema:"title=Conflict separator marker" yaml:"markerSep,omitempty"`

	// MarkerEnd overrides the default ">>>>>>>" conflict marker.
	MarkerEnd string `json:"markerEnd,omitempty" jsonschema:"title=Conflict end marker" yaml:"markerEnd,omitempty"`

	// MaxInputLen sets the default maximum per-input byte length carried on
	// each profile. No merge applies it: the engine's fixed 65535-byte
	// ceiling always governs, and larger values are not rejected.
	MaxInputLen int `json:"maxInputLen,omitempty" jsonschema:"title=Maximum input size in bytes" yaml:"maxInputLen,omitempty"`

	// Profiles lists path-pattern overrides applied during "bmerge merge-dir",
	// evaluated in order with first-match-wins semantics.
	Profiles []ProfileOverride `json:"profiles,omitempty" jsonschema:"title=Per-path profile overrides" yaml:"profiles,omitempty"`
}

// ProfileOverride associates a file-path glob pattern with a [profile.Profile].
type ProfileOverride struct {
	// Pattern is a doublestar glob matched against a file's path,
	// e.g. "**/*.tf".
	Pattern string `json:"pattern" jsonschema:"title=Path glob pattern,required" yaml:"pattern"`

	profile.Profile `json:",inline" yaml:",inline"`
}

// Default returns the zero [Config] with package defaults applied.
func Default() Config {
	return Config{
		MarkerBegin: profile.DefaultMarkerBegin,
		MarkerSep:   profile.DefaultMarkerSep,
		MarkerEnd:   profile.DefaultMarkerEnd,
		MaxInputLen: profile.DefaultMaxInputLen,
	}
}

// WithDefaults returns a copy of c with zero-valued fields filled in from
// [Default].
func (c Config) WithDefaults() Config {
	d := Default()

	if c.MarkerBegin == "" {
		c.MarkerBegin = d.MarkerBegin
	}

	if c.MarkerSep == "" {
		c.MarkerSep = d.MarkerSep
	}

	if c.MarkerEnd == "" {
		c.MarkerEnd = d.MarkerEnd
	}

	if c.MaxInputLen == 0 {
		c.MaxInputLen = d.MaxInputLen
	}

	return c
}

// Profile returns the config's top-level defaults as a [profile.Profile].
func (c Config) Profile() profile.Profile {
	c = c.WithDefaults()

	return profile.Profile{
		MarkerBegin: c.MarkerBegin,
		MarkerSep:   c.MarkerSep,
		MarkerEnd:   c.MarkerEnd,
		MaxInputLen: c.MaxInputLen,
	}
}

// Registry builds a profile [registry.Registry] from the config's per-path
// overrides, falling back to the config's top-level defaults when no
// override matches.
func (c Config) Registry() *registry.Registry {
	reg := registry.New()

	for _, override := range c.Profiles {
		pattern, err := filepaths.NewPattern(override.Pattern)
		if err != nil {
			continue
		}

		reg.RegisterFunc(matcher.FilePath(pattern), loader.Static(override.Pattern, override.Profile))
	}

	reg.RegisterFunc(matcher.Always(), loader.Static("default", c.Profile()))

	return reg
}

// Load reads and validates a config file at path.
//
// The decoded document is validated against a JSON Schema generated from
// [Config] before being unmarshaled into the typed struct, so a malformed
// config fails fast with a precise message.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config paths are intentional.
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := validate(path, data); err != nil {
		return Config{}, err
	}

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg.WithDefaults(), nil
}

// validate checks data against the JSON Schema generated from [Config].
func validate(path string, data []byte) error {
	schemaData, err := Schema()
	if err != nil {
		return fmt.Errorf("generate config schema: %w", err)
	}

	v, err := configvalidate.New(path, schemaData)
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var raw any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := v.Validate(raw); err != nil {
		return fmt.Errorf("validate config %s: %w", path, err)
	}

	return nil
}

// Schema generates the JSON Schema for [Config], enriched with doc comments
// from this package's source. Used both to validate a config file at load
// time and by "bmerge schema", which prints it.
func Schema() ([]byte, error) {
	gen := configschema.New(Config{},
		configschema.WithPackagePaths("go.jacobcolvin.com/bmerge/internal/config"),
	)

	//nolint:wrapcheck // Wrapped by callers with more specific context.
	return gen.Generate()
}
