package loader

import "context"

// Custom creates a [Loader] from a custom function that returns profile
// bytes and URL separately.
//
// Errors returned by fn are passed through directly without wrapping, allowing
// the caller to provide their own contextual error messages.
//
// Use this for custom dynamic loading logic:
//
//	l := loader.Custom(func(ctx context.Context, filePath string) ([]byte, string, error) {
//	    name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
//	    data, err := profileFS.ReadFile("profiles/" + name + ".yaml")
//	    if err != nil {
//	        return nil, "", fmt.Errorf("load profile for %q: %w", name, err)
//	    }
//	    return data, name, nil
//	})
func Custom(fn func(ctx context.Context, filePath string) ([]byte, string, error)) Loader {
	return Func(func(ctx context.Context, filePath string) (Result, error) {
		data, profileURL, err := fn(ctx, filePath)
		if err != nil {
			return Result{}, err //nolint:wrapcheck // Custom function provides its own context.
		}

		return NewResult(profileURL, data), nil
	})
}
