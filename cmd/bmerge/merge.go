package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge"
	"go.jacobcolvin.com/bmerge/internal/profile"
)

func mergeCmd() *cobra.Command {
	var (
		output     string
		configPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "merge <base> <ours> <theirs>",
		Short: "Three-way merge three files",
		Long: "Merge ours and theirs, two independent descendants of base, writing the\n" +
			"result to stdout (or -o). Exits 1 if any conflict was left unresolved,\n" +
			"mirroring diff3 and git merge-file.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			base, err := os.ReadFile(args[0]) //nolint:gosec // User-provided file paths are intentional.
			if err != nil {
				return fmt.Errorf("read base %s: %w", args[0], err)
			}

			ours, err := os.ReadFile(args[1]) //nolint:gosec // User-provided file paths are intentional.
			if err != nil {
				return fmt.Errorf("read ours %s: %w", args[1], err)
			}

			theirs, err := os.ReadFile(args[2]) //nolint:gosec // User-provided file paths are intentional.
			if err != nil {
				return fmt.Errorf("read theirs %s: %w", args[2], err)
			}

			out, conflicts := renderMerge(cfg.Profile(), base, ours, theirs)

			w := cmd.OutOrStdout()

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil { //nolint:gosec // Merge output is not sensitive.
					return fmt.Errorf("write %s: %w", output, err)
				}
			} else if _, err := w.Write(out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if conflicts {
				if !quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "bmerge: conflicts found")
				}

				os.Exit(1)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write merged output to this file instead of stdout")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to .bmerge.yaml (default: autodiscover)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the conflict notice on stderr")

	return cmd
}

// renderMerge runs [bmerge.Merge] and renders conflicts using p's marker
// strings, labeling the ours/theirs sides.
func renderMerge(p profile.Profile, base, ours, theirs []byte) ([]byte, bool) {
	var buf bytes.Buffer

	sink := markerSink{buf: &buf, profile: p}
	conflicts := bmerge.Merge(base, ours, theirs, sink)

	return buf.Bytes(), conflicts
}

// markerSink renders conflicts as git-style conflict markers.
type markerSink struct {
	buf     *bytes.Buffer
	profile profile.Profile
}

func (s markerSink) EmitMerged(run []byte) {
	s.buf.Write(run)
}

func (s markerSink) EmitConflict(_, ours, theirs []byte) {
	begin, sep, end := s.profile.Labels("ours", "theirs")

	s.buf.WriteString(begin)
	s.buf.WriteByte('\n')
	s.buf.Write(ours)

	if len(ours) == 0 || ours[len(ours)-1] != '\n' {
		s.buf.WriteByte('\n')
	}

	s.buf.WriteString(sep)
	s.buf.WriteByte('\n')
	s.buf.Write(theirs)

	if len(theirs) == 0 || theirs[len(theirs)-1] != '\n' {
		s.buf.WriteByte('\n')
	}

	s.buf.WriteString(end)
	s.buf.WriteByte('\n')
}
