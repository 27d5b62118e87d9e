// Package style provides a hierarchical styling system for rendering
// three-way merge output.
//
// A merged file mixes bytes from three provenances — base, ours, theirs —
// plus conflict markers and driver-resolved regions. Each needs distinct
// visual styling when rendered to a terminal.
//
// Rather than requiring a theme to define every category, this package uses
// inheritance: unspecified styles fall back to their parent category. For
// example, [GenericConflictLabel] inherits from [GenericConflictMarker],
// which inherits from [Generic], which inherits from [Text].
//
// # Style Categories
//
// [Style] constants identify rendering categories, named after Pygments'
// generic-diff tokens since conflict regions are a generalization of diff
// hunks:
//
//   - [Text]: the root; the fallback for every other category.
//   - [Generic] -> [GenericBase], [GenericMerged], [GenericOurs],
//     [GenericTheirs], [GenericDeleted], [GenericInserted]: provenance of a
//     byte range in rendered output.
//   - [GenericConflictMarker] -> [GenericConflictLabel]: the
//     `<<<<<<<`/`=======`/`>>>>>>>` marker lines and their revision labels.
//
// # Creating Style Maps
//
// [NewStyles] creates a [Styles] map that pre-computes inherited styles.
// Provide a base [lipgloss.Style] and use [Set] to override specific
// categories:
//
//	styles := style.NewStyles(
//	    lipgloss.NewStyle(),
//	    style.Set(style.GenericOurs, lipgloss.NewStyle().Foreground(lipgloss.Color("4"))),
//	    style.Set(style.GenericTheirs, lipgloss.NewStyle().Foreground(lipgloss.Color("1"))),
//	)
//
// With this configuration, [GenericOurs] gets a blue foreground,
// [GenericTheirs] gets red, and everything else falls back to the base style.
//
// [DefaultTheme] returns a ready-made [Styles] map for [Light] or [Dark]
// terminals; [Mode] selects between them.
//
// # Style Strings
//
// This package also provides encoding and decoding of Pygments-style strings
// to and from [lipgloss.Style] values via [Parse], [MustParse], and [Encode].
// Styles are specified as space-separated tokens; order is not significant.
//
// Colors use hex format:
//
//	#rrggbb     - Foreground color (e.g., #ff0000 for red)
//	#rgb        - Short foreground color (e.g., #f00 for red)
//	bg:#rrggbb  - Background color
//
// Modifiers toggle text attributes:
//
//	bold / nobold           - Bold text
//	italic / noitalic       - Italic text
//	underline / nounderline - Underlined text
//
// Special tokens (ignored for Pygments compatibility):
//
//	noinherit
//	border:#rrggbb
//
// Example usage:
//
//	// A simple foreground color:
//	s, err := style.Parse("#ff0000")
//
//	// Bold text with a specific color:
//	s, err := style.Parse("bold #c678dd")
//
//	// For compile-time constants, use MustParse:
//	var conflictMarker = style.MustParse("bold #c678dd")
//
//	// To convert a style back to a string:
//	out := style.Encode(s) // "bold #c678dd"
package style
