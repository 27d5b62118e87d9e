package style

import "charm.land/lipgloss/v2"

// DefaultTheme returns the built-in [Styles] for the given [Mode].
//
// Colors are deliberately few: conflict rendering favors legibility over
// syntax-highlighting nuance, since the thing being colored is provenance
// (base/ours/theirs/merged), not a grammar.
func DefaultTheme(mode Mode) Styles {
	if mode == Dark {
		return NewStyles(
			lipgloss.NewStyle(),
			Set(GenericBase, MustParse("#808080")),
			Set(GenericMerged, MustParse("#d0d0d0")),
			Set(GenericOurs, MustParse("bold #6cb6ff")),
			Set(GenericTheirs, MustParse("bold #ff9580")),
			Set(GenericDeleted, MustParse("#ff8080")),
			Set(GenericInserted, MustParse("#80ff9f")),
			Set(GenericConflictMarker, MustParse("bold #d0d0d0")),
			Set(GenericConflictLabel, MustParse("italic #808080")),
		)
	}

	return NewStyles(
		lipgloss.NewStyle(),
		Set(GenericBase, MustParse("#5f5f5f")),
		Set(GenericMerged, MustParse("#1a1a1a")),
		Set(GenericOurs, MustParse("bold #0060c0")),
		Set(GenericTheirs, MustParse("bold #c04000")),
		Set(GenericDeleted, MustParse("#a00000")),
		Set(GenericInserted, MustParse("#007000")),
		Set(GenericConflictMarker, MustParse("bold #1a1a1a")),
		Set(GenericConflictLabel, MustParse("italic #5f5f5f")),
	)
}
