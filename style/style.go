// Package style provides types and constants for styling three-way merge
// output: base/ours/theirs regions, conflict markers, and merged text.
package style

import (
	"charm.land/lipgloss/v2"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Light Mode = iota
	Dark
)

// Style identifies a style category for merge-output rendering.
// Used as keys in [Styles] maps.
type Style int

// Style constants for merge-output rendering.
// Names follow Pygments generic-diff token naming conventions where
// applicable, since conflict regions are a generalization of diff hunks.
//
//nolint:grouper // Enum.
const (
	Text                  Style = iota // Default/fallback style.
	Generic                            // Generic tokens (parent only).
	GenericBase                        // Bytes carried over unchanged from base.
	GenericMerged                      // Bytes resolved automatically by the merge driver.
	GenericOurs                        // Bytes taken from the ours side of a conflict.
	GenericTheirs                      // Bytes taken from the theirs side of a conflict.
	GenericDeleted                     // Bytes deleted relative to base.
	GenericInserted                    // Bytes inserted relative to base.
	GenericConflictMarker              // Conflict marker lines (<<<<<<<, =======, >>>>>>>).
	GenericConflictLabel                // Revision label text on a conflict marker line.
)

// styleParent defines the inheritance hierarchy for styles.
// Each style maps to its parent style. [Text] is the root and has no parent.
var styleParent = map[Style]Style{
	Generic:               Text,
	GenericBase:           Generic,
	GenericMerged:         Generic,
	GenericOurs:           Generic,
	GenericTheirs:         Generic,
	GenericDeleted:        Generic,
	GenericInserted:       Generic,
	GenericConflictMarker: Generic,
	GenericConflictLabel:  GenericConflictMarker,
}

// parent returns the parent [Style] for inheritance lookup.
// Returns [Text] if no explicit parent is defined.
func (s Style) parent() Style {
	if p, ok := styleParent[s]; ok {
		return p
	}

	return Text
}

// Styles defines styles for merge-output rendering.
type Styles map[Style]lipgloss.Style

// StylesOption configures a [Styles] map during construction.
// See [Set] for the primary option.
type StylesOption func(map[Style]lipgloss.Style)

// Set returns a [StylesOption] that overrides the style for the given [Style].
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func Set(s Style, ls lipgloss.Style) StylesOption {
	return func(m map[Style]lipgloss.Style) {
		m[s] = ls
	}
}

// NewStyles creates a [Styles] map with pre-computed entries.
// The base style is used for [Text] and inherited by all other styles.
// Use [Set] options to override specific styles.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewStyles(base lipgloss.Style, opts ...StylesOption) Styles {
	overrides := make(map[Style]lipgloss.Style)
	for _, opt := range opts {
		opt(overrides)
	}

	// Resolve walks up the inheritance chain to find a defined style.
	resolve := func(s Style) lipgloss.Style {
		current := s
		for {
			if ls, ok := overrides[current]; ok {
				return ls
			}

			if current == Text {
				break
			}

			current = current.parent()
		}

		return base
	}

	// Resolve all styles.
	resolved := make(Styles, len(styleParent)+1)

	resolved[Text] = resolve(Text)
	for st := range styleParent {
		resolved[st] = resolve(st)
	}

	return resolved
}

// Style returns the [lipgloss.Style] for the given [Style] category.
// Returns an empty [lipgloss.Style] if the style is not defined.
func (s Styles) Style(st Style) *lipgloss.Style {
	if ls, ok := s[st]; ok {
		return &ls
	}

	return &lipgloss.Style{}
}

// With returns a copy of s with opts applied on top. s is not modified.
func (s Styles) With(opts ...StylesOption) Styles {
	out := make(Styles, len(s))
	for st, ls := range s {
		out[st] = ls
	}

	for _, opt := range opts {
		opt(out)
	}

	return out
}
