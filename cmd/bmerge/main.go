// Package main provides the bmerge CLI: a three-way byte-level merge tool.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge/fangs"
	"go.jacobcolvin.com/bmerge/style"
)

func main() {
	cmd := &cobra.Command{
		Use:           "bmerge",
		Short:         "A three-way byte-level merge tool",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(
		mergeCmd(),
		mergeDirCmd(),
		resolveCmd(),
		diffCmd(),
		schemaCmd(),
	)

	styles := style.DefaultTheme(style.Dark)

	err := fang.Execute(context.Background(), cmd,
		fang.WithErrorHandler(fangs.ErrorHandler),
		fang.WithColorSchemeFunc(fangs.ColorSchemeFunc(styles)),
	)
	if err != nil {
		os.Exit(1)
	}
}
