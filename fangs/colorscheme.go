package fangs

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"

	"go.jacobcolvin.com/bmerge/style"
)

// ColorScheme creates a [fang.ColorScheme] from [style.Styles].
//
// This allows CLI styling to be derived from the existing theme system,
// providing consistent colors between the "bmerge resolve" TUI and CLI help
// output.
func ColorScheme(styles style.Styles) fang.ColorScheme {
	text := styles.Style(style.Text)
	dimmed := styles.Style(style.GenericBase)
	deleted := styles.Style(style.GenericDeleted)

	return fang.ColorScheme{
		Base:           text.GetForeground(),
		Title:          styles.Style(style.GenericConflictMarker).GetForeground(),
		Description:    text.GetForeground(),
		Codeblock:      text.GetBackground(),
		Program:        styles.Style(style.GenericConflictMarker).GetForeground(),
		Command:        styles.Style(style.GenericOurs).GetForeground(),
		DimmedArgument: dimmed.GetForeground(),
		Comment:        dimmed.GetForeground(),
		Flag:           styles.Style(style.GenericInserted).GetForeground(),
		FlagDefault:    dimmed.GetForeground(),
		QuotedString:   styles.Style(style.GenericTheirs).GetForeground(),
		Argument:       text.GetForeground(),
		Dash:           dimmed.GetForeground(),
		ErrorHeader: [2]color.Color{
			deleted.GetForeground(),
			deleted.GetBackground(),
		},
	}
}

// ColorSchemeFunc returns a [fang.ColorSchemeFunc] that creates a
// [fang.ColorScheme] from [style.Styles].
//
// This wraps [ColorScheme] for use with [fang.WithColorSchemeFunc].
// Since themes are designed for a specific light/dark mode, the
// [lipgloss.LightDarkFunc] parameter is ignored.
func ColorSchemeFunc(styles style.Styles) fang.ColorSchemeFunc {
	return func(_ lipgloss.LightDarkFunc) fang.ColorScheme {
		return ColorScheme(styles)
	}
}
