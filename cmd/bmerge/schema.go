package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/bmerge/internal/config"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for .bmerge.yaml",
		Long: "Print the JSON Schema generated from the config package's struct tags.\n" +
			"Useful for editor autocompletion (yaml-language-server $schema comments)\n" +
			"or for validating a config file with an external tool.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(append(data, '\n'))

			return err
		},
	}

	return cmd
}
