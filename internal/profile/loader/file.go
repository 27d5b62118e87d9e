package loader

import (
	"context"
	"fmt"
	"os"
)

// File creates a [Loader] that reads profile data from a local YAML file.
//
// The file path is used directly without validation. Callers should ensure
// paths come from trusted sources or are validated before use to prevent
// path traversal attacks.
//
//	l := loader.File("./profiles/terraform.yaml")
func File(path string) Loader {
	return Func(func(_ context.Context, _ string) (Result, error) {
		data, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
		if err != nil {
			return Result{}, fmt.Errorf("read %s: %w", path, err)
		}

		return NewResult(path, data), nil
	})
}
