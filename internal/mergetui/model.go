package mergetui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"go.jacobcolvin.com/bmerge"
	"go.jacobcolvin.com/bmerge/style"
)

// Resolution records the operator's choice for one conflict.
type Resolution int

// [Resolution] constants.
const (
	// Unresolved means the conflict has not been decided; its markers are
	// kept in the final output.
	Unresolved Resolution = iota
	// ResolvedOurs takes the ours side only.
	ResolvedOurs
	// ResolvedTheirs takes the theirs side only.
	ResolvedTheirs
	// ResolvedBoth keeps both sides, ours immediately followed by theirs,
	// with no conflict markers.
	ResolvedBoth
)

// Model is the [tea.Model] for the conflict resolver.
//
//nolint:recvcheck // tea.Model requires value receivers for Init, Update, View.
type Model struct {
	records     []bmerge.Record
	conflicts   []int // indices into records that are conflicts
	resolutions map[int]Resolution
	current     int // index into conflicts
	scroll      int
	width       int
	height      int
	styles      style.Styles
	keys        KeyMap
	profile     func(ours, theirs string) (begin, sep, end string)
	quitting    bool
}

// New creates a [Model] over the output of [bmerge.MergeRecords].
//
// labels renders the conflict-marker strings used to preserve unresolved
// conflicts in the final document; pass a profile's Labels method.
func New(records []bmerge.Record, styles style.Styles, labels func(ours, theirs string) (begin, sep, end string)) Model {
	conflicts := make([]int, 0)

	for i, r := range records {
		if r.Conflict {
			conflicts = append(conflicts, i)
		}
	}

	return Model{
		records:     records,
		conflicts:   conflicts,
		resolutions: make(map[int]Resolution, len(conflicts)),
		styles:      styles,
		keys:        DefaultKeyMap(),
		profile:     labels,
	}
}

// Init implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if m.current < len(m.conflicts)-1 {
				m.current++
				m.scroll = 0
			}

		case key.Matches(msg, m.keys.Prev):
			if m.current > 0 {
				m.current--
				m.scroll = 0
			}

		case key.Matches(msg, m.keys.ChooseOurs):
			m.resolve(ResolvedOurs)

		case key.Matches(msg, m.keys.ChooseTheirs):
			m.resolve(ResolvedTheirs)

		case key.Matches(msg, m.keys.ChooseBoth):
			m.resolve(ResolvedBoth)

		case key.Matches(msg, m.keys.Reset):
			m.resolve(Unresolved)

		case key.Matches(msg, m.keys.ScrollUp):
			if m.scroll > 0 {
				m.scroll--
			}

		case key.Matches(msg, m.keys.ScrollDown):
			m.scroll++
		}
	}

	return m, nil
}

// resolve sets the resolution for the conflict currently in view and
// advances to the next conflict, if any, whether or not that one is already
// resolved. Choosing [Unresolved] does not advance.
func (m *Model) resolve(r Resolution) {
	if len(m.conflicts) == 0 {
		return
	}

	m.resolutions[m.conflicts[m.current]] = r

	if r != Unresolved && m.current < len(m.conflicts)-1 {
		m.current++
		m.scroll = 0
	}
}

// Done reports whether every conflict has a [Resolution] other than
// [Unresolved].
func (m Model) Done() bool {
	for _, idx := range m.conflicts {
		if m.resolutions[idx] == Unresolved {
			return false
		}
	}

	return true
}

// Resolved assembles the final document: merged runs are passed through
// unchanged, and each conflict record is rendered per its [Resolution].
// Conflicts left [Unresolved] keep their conflict markers, via the labels
// function passed to [New].
func (m Model) Resolved() []byte {
	var buf strings.Builder

	for i, r := range m.records {
		if !r.Conflict {
			buf.Write(r.Merged)

			continue
		}

		switch m.resolutions[i] {
		case ResolvedOurs:
			buf.Write(r.Ours)
		case ResolvedTheirs:
			buf.Write(r.Theirs)
		case ResolvedBoth:
			buf.Write(r.Ours)
			buf.Write(r.Theirs)
		default:
			writeMarkedConflict(&buf, m.profile, r)
		}
	}

	return []byte(buf.String())
}

func writeMarkedConflict(buf *strings.Builder, labels func(ours, theirs string) (begin, sep, end string), r bmerge.Record) {
	begin, sep, end := labels("ours", "theirs")

	buf.WriteString(begin)
	buf.WriteByte('\n')
	buf.Write(r.Ours)
	buf.WriteByte('\n')
	buf.WriteString(sep)
	buf.WriteByte('\n')
	buf.Write(r.Theirs)
	buf.WriteByte('\n')
	buf.WriteString(end)
	buf.WriteByte('\n')
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

func (m Model) render() string {
	if m.quitting {
		resolved, total := 0, len(m.conflicts)

		for _, idx := range m.conflicts {
			if m.resolutions[idx] != Unresolved {
				resolved++
			}
		}

		return m.styles.Style(style.GenericMerged).Render(
			fmt.Sprintf("resolved %d/%d conflicts, emitting document.", resolved, total),
		)
	}

	if len(m.conflicts) == 0 {
		return m.styles.Style(style.GenericMerged).Render("no conflicts — nothing to resolve. press q to exit.")
	}

	idx := m.conflicts[m.current]
	rec := m.records[idx]

	colWidth := max(10, m.width/2-1)
	paneHeight := max(3, m.height-4)

	ours := m.renderPane("ours", rec.Ours, rec.Base, colWidth, paneHeight, style.GenericOurs)
	theirs := m.renderPane("theirs", rec.Theirs, rec.Base, colWidth, paneHeight, style.GenericTheirs)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, ours, theirs)

	return lipgloss.JoinVertical(lipgloss.Left, panes, m.statusBar())
}

func (m Model) renderPane(label string, content, base []byte, width, height int, st style.Style) string {
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	offsets := lineByteOffsets(lines)

	changed := highlightRanges(base, content, m.styles.Style(style.GenericInserted))
	plain := m.styles.Style(st)
	emphasis := m.styles.Style(style.GenericInserted)

	start := min(m.scroll, max(0, len(lines)-1))
	end := min(len(lines), start+height)

	rendered := make([]string, 0, end-start)

	for i := start; i < end; i++ {
		lineStyle := plain
		if len(changed.QueryRange(offsets[i], offsets[i]+len(lines[i])+1)) > 0 {
			lineStyle = emphasis
		}

		rendered = append(rendered, lineStyle.Render(lines[i]))
	}

	header := m.styles.Style(style.GenericConflictMarker).Render(fmt.Sprintf("── %s ──", label))
	body := lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(rendered, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) statusBar() string {
	resolved := 0

	for _, idx := range m.conflicts {
		if m.resolutions[idx] != Unresolved {
			resolved++
		}
	}

	choice := "unresolved"

	switch m.resolutions[m.conflicts[m.current]] {
	case ResolvedOurs:
		choice = "ours"
	case ResolvedTheirs:
		choice = "theirs"
	case ResolvedBoth:
		choice = "both"
	}

	left := fmt.Sprintf(" conflict %d/%d [%s]", m.current+1, len(m.conflicts), choice)
	right := fmt.Sprintf("%d/%d resolved ", resolved, len(m.conflicts))

	barStyle := lipgloss.NewStyle().
		Background(charmtone.Charcoal).
		Foreground(charmtone.Salt).
		Inline(true)

	padding := max(0, lipgloss.Width(left))
	right = lipgloss.PlaceHorizontal(m.width-padding, lipgloss.Right, right)

	return barStyle.Render(left + right)
}
