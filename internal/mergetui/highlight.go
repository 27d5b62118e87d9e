package mergetui

import (
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/bmerge/internal/styletree"
)

// highlightRanges builds a styletree.Tree marking the byte range within side
// that differs from base — the longest common prefix and suffix are
// stripped, and whatever remains in the middle is tagged with emphasis. Used
// to pick out which lines of a conflict pane actually changed, rather than
// coloring every line of ours/theirs uniformly regardless of whether it
// matches base.
func highlightRanges(base, side []byte, emphasis *lipgloss.Style) *styletree.Tree {
	tree := styletree.New()

	prefix := commonPrefixLen(base, side)
	suffix := commonSuffixLen(base[prefix:], side[prefix:])

	start, end := prefix, len(side)-suffix
	if start < end {
		tree.Insert(start, end, emphasis)
	}

	return tree
}

func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

func commonSuffixLen(a, b []byte) int {
	n := min(len(a), len(b))

	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}

	return i
}

// lineByteOffsets returns, for each entry in lines (the result of splitting
// content's text on "\n"), the byte offset within content at which that
// line begins.
func lineByteOffsets(lines []string) []int {
	offsets := make([]int, len(lines))

	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1 // +1 for the newline consumed by Split
	}

	return offsets
}
