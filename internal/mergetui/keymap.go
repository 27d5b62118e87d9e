package mergetui

import "charm.land/bubbles/v2/key"

// KeyMap defines the keybindings for the resolver.
//
// Use [DefaultKeyMap] to get a set of default keybindings.
type KeyMap struct {
	// Next moves to the next conflict.
	Next key.Binding
	// Prev moves to the previous conflict.
	Prev key.Binding
	// ChooseOurs resolves the current conflict with the ours side.
	ChooseOurs key.Binding
	// ChooseTheirs resolves the current conflict with the theirs side.
	ChooseTheirs key.Binding
	// ChooseBoth keeps both sides, ours then theirs, without markers.
	ChooseBoth key.Binding
	// Reset clears the resolution for the current conflict.
	Reset key.Binding
	// ScrollUp scrolls the side-panel preview up.
	ScrollUp key.Binding
	// ScrollDown scrolls the side-panel preview down.
	ScrollDown key.Binding
	// Quit exits, emitting the document as resolved so far.
	Quit key.Binding
}

// DefaultKeyMap returns a new [KeyMap] with the resolver's default
// keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab/n", "next conflict"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab/p", "prev conflict"),
		),
		ChooseOurs: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "keep ours"),
		),
		ChooseTheirs: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "keep theirs"),
		),
		ChooseBoth: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "keep both"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset choice"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit and emit"),
		),
	}
}
