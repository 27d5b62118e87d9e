package main

import (
	"errors"
	"fmt"
	"os"

	"go.jacobcolvin.com/bmerge/internal/config"
)

// loadConfig loads the config file at path. If path is empty, it looks for
// [config.DefaultFileName] in the current directory and falls back to
// [config.Default] if that file does not exist.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = config.DefaultFileName

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return config.Default(), nil
			}

			return config.Config{}, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	return config.Load(path)
}
