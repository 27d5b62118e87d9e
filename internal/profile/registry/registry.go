// Package registry maps file paths to merge profiles using pluggable
// matchers, first-match-wins, with decoded profiles cached by URL.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/bmerge/internal/profile"
	"go.jacobcolvin.com/bmerge/internal/profile/loader"
	"go.jacobcolvin.com/bmerge/internal/profile/matcher"
)

var (
	// ErrNoMatch indicates no matcher matched the file path.
	ErrNoMatch = errors.New("no matching profile")

	// ErrLoad indicates the profile could not be loaded.
	ErrLoad = errors.New("load profile")

	// ErrDecode indicates profile decoding failed.
	ErrDecode = errors.New("decode profile")
)

// Cache stores and retrieves decoded profiles by URL.
//
// The default implementation is an unbounded thread-safe map. Provide a
// custom implementation via [WithCache] for alternative caching strategies
// (LRU, TTL, external cache, etc.).
type Cache interface {
	Get(url string) (*profile.Profile, bool)
	Set(url string, p *profile.Profile)
}

// mapCache is the default [Cache] implementation using an unbounded map.
type mapCache struct {
	cache map[string]*profile.Profile
	mu    sync.RWMutex
}

func newMapCache() *mapCache {
	return &mapCache{cache: make(map[string]*profile.Profile)}
}

// Get retrieves a profile from the cache.
func (c *mapCache) Get(url string) (*profile.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.cache[url]

	return p, ok
}

// Set stores a profile in the cache.
func (c *mapCache) Set(url string, p *profile.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[url] = p
}

// Registry maps file paths to merge profiles using pluggable matchers.
//
// Registrations are evaluated in order; first match wins. Decoded profiles
// are cached by profile URL to avoid re-decoding.
//
// Example:
//
//	reg := registry.New()
//	reg.RegisterFunc(
//	    matcher.FilePath(filepaths.MustPattern("**/*.tf")),
//	    loader.Embedded("terraform.yaml", terraformProfile),
//	)
//	reg.RegisterFunc(matcher.Always(), loader.Static("default", profile.Profile{}))
//
// Create instances with [New].
type Registry struct {
	cache        Cache
	matchLoaders []MatchLoader
}

// Option configures [Registry] creation.
//
// Available options:
//   - [WithCache]
type Option func(*Registry)

// WithCache is an [Option] that sets a custom [Cache] implementation.
func WithCache(c Cache) Option {
	return func(r *Registry) {
		r.cache = c
	}
}

// New creates a new [*Registry].
func New(opts ...Option) *Registry {
	r := &Registry{
		cache: newMapCache(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a [MatchLoader] to the registry.
//
// Registrations are evaluated in order; first match wins.
//
// For stateless [matcher.Matcher] and [loader.Loader] implementations, use
// [RegisterFunc].
func (r *Registry) Register(ml MatchLoader) {
	r.matchLoaders = append(r.matchLoaders, ml)
}

// RegisterFunc adds a [matcher.Matcher] and [loader.Loader] pair to the
// registry.
//
// This is a convenience method for registering separate Matcher and Loader
// implementations. The matcher and loader do not share state; for stateful
// implementations, implement [MatchLoader] directly and use [Register].
//
// Registrations are evaluated in order; first match wins.
func (r *Registry) RegisterFunc(m matcher.Matcher, l loader.Loader) {
	r.Register(&matchLoaderWrapper{matcher: m, loader: l})
}

// Lookup finds the profile for a file path.
//
// Returns [ErrNoMatch] if no matcher matches the file path. Returns other
// errors if profile loading or decoding fails.
func (r *Registry) Lookup(ctx context.Context, filePath string) (profile.Profile, error) {
	for _, ml := range r.matchLoaders {
		if !ml.Match(filePath) {
			continue
		}

		p, err := r.loadProfile(ctx, filePath, ml)
		if err != nil {
			return profile.Profile{}, err
		}

		return p.WithDefaults(), nil
	}

	return profile.Profile{}, fmt.Errorf("%w: %q", ErrNoMatch, filePath)
}

// loadProfile loads and decodes a profile, using cache when possible.
//
// Under concurrent load, multiple goroutines may decode the same profile
// before one caches it. This is intentional to avoid lock contention; the
// overhead of occasional duplicate decoding is acceptable.
func (r *Registry) loadProfile(ctx context.Context, filePath string, ml MatchLoader) (profile.Profile, error) {
	result, err := ml.Load(ctx, filePath)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if p, ok := r.cache.Get(result.URL); ok {
		return *p, nil
	}

	var p profile.Profile

	if result.Profile != nil {
		p = *result.Profile
	} else {
		if decodeErr := yaml.Unmarshal(result.Data, &p); decodeErr != nil {
			return profile.Profile{}, fmt.Errorf("%w: %q: %w", ErrDecode, result.URL, decodeErr)
		}
	}

	// Cache by URL. Skip caching for empty URLs to avoid cache collisions
	// where different profiles would share a single cache entry.
	if result.URL != "" {
		r.cache.Set(result.URL, &p)
	}

	return p, nil
}
