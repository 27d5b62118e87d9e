package registry

import (
	"context"

	"go.jacobcolvin.com/bmerge/internal/profile/loader"
	"go.jacobcolvin.com/bmerge/internal/profile/matcher"
)

// MatchLoader combines matching and loading into a single type.
//
// [Registry] calls Match first, then Load if matched. Implementations may
// cache intermediate results between these calls to avoid redundant work.
//
// Register with [Registry.Register]. For separate [matcher.Matcher] and
// [loader.Loader] implementations that do not share state, use
// [Registry.RegisterFunc].
type MatchLoader interface {
	matcher.Matcher
	loader.Loader
}

// matchLoaderWrapper wraps separate Matcher and Loader into a MatchLoader.
type matchLoaderWrapper struct {
	matcher matcher.Matcher
	loader  loader.Loader
}

// Match delegates to the wrapped matcher.
func (w *matchLoaderWrapper) Match(filePath string) bool {
	return w.matcher.Match(filePath)
}

// Load delegates to the wrapped loader.
func (w *matchLoaderWrapper) Load(ctx context.Context, filePath string) (loader.Result, error) {
	//nolint:wrapcheck // Errors wrapped by Registry.
	return w.loader.Load(ctx, filePath)
}
