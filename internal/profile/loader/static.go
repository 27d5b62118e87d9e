package loader

import (
	"context"

	"go.jacobcolvin.com/bmerge/internal/profile"
)

// Static creates a [Loader] that returns a pre-built [profile.Profile].
//
// This bypasses profile decoding, returning the value directly. Useful for
// sharing a profile across registrations without round-tripping through
// YAML.
//
//	l := loader.Static("terraform", profile.Profile{MarkerBegin: "<<<<<<<"})
func Static(profileURL string, p profile.Profile) Loader {
	return Func(func(_ context.Context, _ string) (Result, error) {
		return NewResultWithProfile(profileURL, &p), nil
	})
}
