package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge"
	"go.jacobcolvin.com/bmerge/internal/mergetui"
	"go.jacobcolvin.com/bmerge/style"
)

func resolveCmd() *cobra.Command {
	var (
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "resolve <base> <ours> <theirs>",
		Short: "Interactively resolve conflicts from a three-way merge",
		Long: "Run the three-way merge and, for each conflict, open an interactive\n" +
			"terminal UI to choose ours, theirs, both, or leave the conflict markers\n" +
			"in place. Writes the resulting document to stdout (or -o) on quit.",
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

			records, _ := bmerge.MergeRecords(base, ours, theirs)

			styles := style.DefaultTheme(style.Dark)
			profile := cfg.Profile()
			m := mergetui.New(records, styles, profile.Labels)

			p := tea.NewProgram(m)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run resolver: %w", err)
			}

			resolved, ok := final.(mergetui.Model)
			if !ok {
				return fmt.Errorf("unexpected resolver model type %T", final)
			}

			out := resolved.Resolved()

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil { //nolint:gosec // Merge output is not sensitive.
					return fmt.Errorf("write %s: %w", output, err)
				}

				return nil
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write resolved output to this file instead of stdout")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to .bmerge.yaml (default: autodiscover)")

	return cmd
}
