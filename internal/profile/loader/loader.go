// Package loader loads merge profiles for a matched file path.
package loader

import (
	"context"

	"go.jacobcolvin.com/bmerge/internal/profile"
)

// Loader loads profile data for a file path.
//
// All loaders receive the file path for consistency, though static loaders
// may ignore it.
//
// See [Embedded], [File], [URL], [Static], [Ref], and [Func] for
// implementations.
type Loader interface {
	// Load returns profile data or a pre-built profile for the file path.
	Load(ctx context.Context, filePath string) (Result, error)
}

// Func adapts a function to the [Loader] interface.
type Func func(ctx context.Context, filePath string) (Result, error)

// Load implements [Loader].
func (f Func) Load(ctx context.Context, filePath string) (Result, error) {
	return f(ctx, filePath)
}

// Result contains the output of a [Loader].
//
// A Result must provide either Profile or Data:
//   - If Profile is set, it is used directly and Data is ignored.
//   - If Profile is unset, Data must contain YAML- or JSON-encoded profile
//     bytes for decoding.
//
// Use [NewResult] or [NewResultWithProfile] to construct valid Results.
// These constructors enforce the invariant that either Profile or Data must
// be set.
//
// URL identifies the profile for caching. When URL is empty, the registry
// skips caching entirely, so each lookup decodes the profile fresh. Built-in
// loaders always set URL appropriately.
type Result struct {
	// Profile is an optional pre-built profile.
	// If set, Data is ignored and the profile is used directly.
	// Both pre-built and decoded profiles are cached by URL.
	Profile *profile.Profile

	// URL identifies the profile for caching.
	// When empty, the registry skips caching and decodes fresh each time.
	// Built-in loaders always set this field.
	URL string

	// Data contains YAML- or JSON-encoded profile bytes for decoding.
	// Ignored if Profile is set. Required if Profile is nil.
	Data []byte
}

// NewResult creates a [Result] with encoded profile data for decoding.
//
// Panics if data is empty, since a Result must have either Profile or Data.
func NewResult(url string, data []byte) Result {
	if len(data) == 0 {
		panic("loader.NewResult: data is required when profile is nil")
	}

	return Result{Data: data, URL: url}
}

// NewResultWithProfile creates a [Result] with a pre-built profile.
//
// Panics if p is nil, since a Result must have either Profile or Data.
func NewResultWithProfile(url string, p *profile.Profile) Result {
	if p == nil {
		panic("loader.NewResultWithProfile: profile is required")
	}

	return Result{Profile: p, URL: url}
}
