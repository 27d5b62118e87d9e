package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge/diff"
	"go.jacobcolvin.com/bmerge/style"
)

func diffCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Preview a line-level diff between two files",
		Long: "Render a line-level diff between a and b, the way the merge engine\n" +
			"sees changes before it ever reasons about conflicts. Unlike merge, this\n" +
			"does not require a common base: it is a standalone preview, useful for\n" +
			"inspecting what a profile's conflict markers would be labeling.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := os.ReadFile(args[0]) //nolint:gosec // User-provided file paths are intentional.
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			b, err := os.ReadFile(args[1]) //nolint:gosec // User-provided file paths are intentional.
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			styles := style.DefaultTheme(style.Dark)
			if noColor {
				styles = style.NewStyles(lipgloss.NewStyle())
			}

			renderDiff(cmd.OutOrStdout(), styles, getTerminalWidth(), a, b)

			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling, printing plain +/- prefixes")

	return cmd
}

// renderDiff writes a line-level diff between before and after to w, one
// line per [diff.Op], prefixed the way diff3-family tools do ("-" deleted,
// "+" inserted, " " unchanged) and styled per [diff.OpKind.Style]. Lines
// wider than width are truncated with an ellipsis so long YAML/JSON values
// don't wrap and break the prefix alignment.
func renderDiff(w interface{ Write([]byte) (int, error) }, styles style.Styles, width int, before, after []byte) {
	beforeLines := splitLines(before)
	afterLines := splitLines(after)

	h := diff.NewHirschberg()
	h.Init(len(beforeLines), len(afterLines))

	ops := h.Diff(beforeLines, afterLines)

	var out strings.Builder

	for _, op := range ops {
		var (
			prefix string
			line   string
		)

		switch op.Kind {
		case diff.OpDelete:
			prefix, line = "-", beforeLines[op.Index]
		case diff.OpInsert:
			prefix, line = "+", afterLines[op.Index]
		default:
			prefix, line = " ", afterLines[op.Index]
		}

		rendered := styles.Style(op.Kind.Style()).Render(prefix + truncateLine(line, width-len(prefix)))
		out.WriteString(rendered)
		out.WriteByte('\n')
	}

	fmt.Fprint(w, out.String())
}

// truncateLine shortens line to at most width runes, appending an ellipsis
// marker if truncated. A non-positive width disables truncation.
func truncateLine(line string, width int) string {
	if width <= 0 {
		return line
	}

	runes := []rune(line)
	if len(runes) <= width {
		return line
	}

	if width <= 1 {
		return string(runes[:width])
	}

	return string(runes[:width-1]) + "…"
}

// splitLines splits b into lines, dropping a trailing empty line produced by
// a final newline so the diff does not report a spurious trailing insert.
func splitLines(b []byte) []string {
	s := string(b)
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
