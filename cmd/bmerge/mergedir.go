package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge/internal/filepaths"
)

func mergeDirCmd() *cobra.Command {
	var (
		glob       string
		configPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "merge-dir <base-dir> <ours-dir> <theirs-dir> <out-dir>",
		Short: "Three-way merge every matching file across three directory trees",
		Long: "Expand a glob pattern under base-dir, ours-dir and theirs-dir, then merge\n" +
			"each matching relative path across the three trees, writing results under\n" +
			"out-dir at the same relative path. A file present in ours-dir or\n" +
			"theirs-dir but not base-dir is treated as an add relative to an empty base.\n" +
			"Per-path profile overrides from .bmerge.yaml apply by relative path.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, oursDir, theirsDir, outDir := args[0], args[1], args[2], args[3]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			reg := cfg.Registry()

			relPaths, err := discoverRelPaths(glob, baseDir, oursDir, theirsDir)
			if err != nil {
				return err
			}

			var (
				errs         []error
				anyConflicts bool
			)

			for _, rel := range relPaths {
				p, err := reg.Lookup(cmd.Context(), rel)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				base, err := readOrEmpty(filepath.Join(baseDir, rel))
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				ours, err := readOrEmpty(filepath.Join(oursDir, rel))
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				theirs, err := readOrEmpty(filepath.Join(theirsDir, rel))
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				out, conflicts := renderMerge(p, base, ours, theirs)
				if conflicts {
					anyConflicts = true
				}

				outPath := filepath.Join(outDir, rel)

				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil { //nolint:gosec // Output tree permissions are not sensitive.
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				if err := os.WriteFile(outPath, out, 0o644); err != nil { //nolint:gosec // Merge output is not sensitive.
					errs = append(errs, fmt.Errorf("%s: %w", rel, err))

					continue
				}

				status := "merged"
				if conflicts {
					status = "conflicts"
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rel, status)
			}

			if err := errors.Join(errs...); err != nil {
				return err
			}

			if anyConflicts {
				if !quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "bmerge: conflicts found")
				}

				os.Exit(1)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&glob, "glob", "g", "**/*", "doublestar glob pattern, matched under each of base-dir, ours-dir and theirs-dir")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to .bmerge.yaml (default: autodiscover)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the conflict notice on stderr")

	return cmd
}

// discoverRelPaths expands glob under each of dirs and returns the union of
// matches, as paths relative to their respective dir, sorted lexically and
// deduplicated. A file present only in ours-dir or theirs-dir (absent from
// base-dir) still needs to be merged against an empty base, so the glob is
// expanded against all three trees rather than base-dir alone.
func discoverRelPaths(glob string, dirs ...string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, dir := range dirs {
		matches, err := filepaths.Glob(filepath.Join(dir, glob))
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", m, err)
			}

			if info.IsDir() {
				continue
			}

			rel, err := filepath.Rel(dir, m)
			if err != nil {
				return nil, fmt.Errorf("relativize %s: %w", m, err)
			}

			seen[rel] = struct{}{}
		}
	}

	rels := make([]string, 0, len(seen))
	for rel := range seen {
		rels = append(rels, rel)
	}

	sort.Strings(rels)

	return rels, nil
}

// readOrEmpty reads path, returning an empty slice (not an error) if the
// file does not exist: a path present in ours or theirs but absent from
// base is an add relative to an empty base, not a failure.
func readOrEmpty(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
