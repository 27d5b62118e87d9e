// Package profile selects and loads merge behavior for a given file path.
//
// A [Profile] controls how [go.jacobcolvin.com/bmerge.Merge] output is
// rendered for conflicting regions: the conflict-marker strings written
// around unresolved hunks. It also carries a maximum input size, which no
// merge reads; the engine's own 65,535-byte ceiling applies regardless, and
// oversized input degrades rather than being refused. Profiles are matched to
// files by path (see [go.jacobcolvin.com/bmerge/internal/profile/matcher])
// and produced by a [go.jacobcolvin.com/bmerge/internal/profile/loader.Loader],
// first-match-wins, through a
// [go.jacobcolvin.com/bmerge/internal/profile/registry.Registry].
package profile

import "fmt"

// Default conflict marker strings, matching the conventional git
// merge-conflict format.
const (
	DefaultMarkerBegin = "<<<<<<<"
	DefaultMarkerSep   = "======="
	DefaultMarkerEnd   = ">>>>>>>"
)

// DefaultMaxInputLen is the maximum input size, in bytes, used when a
// profile does not specify one explicitly.
const DefaultMaxInputLen = 65535

// Profile describes how merge conflicts are rendered for a class of files,
// plus a size setting ([Profile.MaxInputLen]) that no merge applies.
type Profile struct {
	// Name identifies the profile, primarily for diagnostics and the
	// "bmerge resolve" status line.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// MarkerBegin precedes the "ours" side of a conflict, e.g. "<<<<<<<".
	MarkerBegin string `json:"markerBegin,omitempty" yaml:"markerBegin,omitempty"`

	// MarkerSep separates "ours" from "theirs" within a conflict, e.g. "=======".
	MarkerSep string `json:"markerSep,omitempty" yaml:"markerSep,omitempty"`

	// MarkerEnd follows the "theirs" side of a conflict, e.g. ">>>>>>>".
	MarkerEnd string `json:"markerEnd,omitempty" yaml:"markerEnd,omitempty"`

	// MaxInputLen overrides [DefaultMaxInputLen] for files this profile
	// applies to. Zero means use the default. The value is decoded and
	// defaulted only; no merge path reads it.
	MaxInputLen int `json:"maxInputLen,omitempty" yaml:"maxInputLen,omitempty"`
}

// WithDefaults returns a copy of p with zero-valued fields filled in from the
// package defaults.
func (p Profile) WithDefaults() Profile {
	if p.MarkerBegin == "" {
		p.MarkerBegin = DefaultMarkerBegin
	}

	if p.MarkerSep == "" {
		p.MarkerSep = DefaultMarkerSep
	}

	if p.MarkerEnd == "" {
		p.MarkerEnd = DefaultMarkerEnd
	}

	if p.MaxInputLen == 0 {
		p.MaxInputLen = DefaultMaxInputLen
	}

	return p
}

// Labels returns the three marker lines formatted with ours/theirs labels,
// as they should appear wrapping a conflicting region.
func (p Profile) Labels(ours, theirs string) (begin, sep, end string) {
	p = p.WithDefaults()

	return fmt.Sprintf("%s %s", p.MarkerBegin, ours),
		p.MarkerSep,
		fmt.Sprintf("%s %s", p.MarkerEnd, theirs)
}
