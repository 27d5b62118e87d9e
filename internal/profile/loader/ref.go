package loader

import (
	"path/filepath"
	"strings"
)

// Ref creates a [Loader] for a profile reference (file path or URL).
//
// This is a convenience wrapper that routes to [URL] for HTTP/HTTPS
// references or [File] for file paths. Use [URL] or [File] directly when the
// reference type is known at construction time.
//
// The baseDir is used to resolve relative file paths. If profileRef is an
// absolute path or URL (http/https), baseDir is ignored. HTTPOptions are used
// when profileRef is a URL; ignored for file paths.
//
//	// Relative path resolved against baseDir.
//	l := loader.Ref("/configs", "profiles/terraform.yaml")
//
//	// Absolute path used directly.
//	l := loader.Ref("/configs", "/etc/bmerge/terraform.yaml")
//
//	// URL fetched directly.
//	l := loader.Ref("/configs", "https://example.com/terraform.yaml")
func Ref(baseDir, profileRef string, opts ...HTTPOption) Loader {
	// Check for HTTP/HTTPS URL using string prefix to avoid URL parsing errors
	// that could cause malformed URLs to be treated as file paths.
	if isHTTPURL(profileRef) {
		return URL(profileRef, opts...)
	}

	// Resolve relative path against baseDir.
	path := profileRef
	if !filepath.IsAbs(profileRef) {
		path = filepath.Join(baseDir, profileRef)
	}

	return File(path)
}

// isHTTPURL reports whether ref starts with http:// or https://.
func isHTTPURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
