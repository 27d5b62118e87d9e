package matcher

import "go.jacobcolvin.com/bmerge/internal/filepaths"

// filePathMatcher matches files by path glob pattern.
type filePathMatcher struct {
	pattern filepaths.Pattern
}

// FilePath creates a new [Matcher] that matches files based on path glob
// patterns.
//
// The pattern is matched against the full file path using doublestar glob
// syntax. Use [filepaths.MustPattern] to create patterns at init time for
// compile-time validation.
//
//	// Matches any YAML file recursively.
//	matcher.FilePath(filepaths.MustPattern("**/*.yaml"))
//
//	// Matches lockfiles anywhere in the tree.
//	matcher.FilePath(filepaths.MustPattern("**/go.sum"))
//
//	// Matches a specific config file in the root.
//	matcher.FilePath(filepaths.MustPattern("package-lock.json"))
func FilePath(pattern filepaths.Pattern) Matcher {
	return &filePathMatcher{pattern: pattern}
}

// Match implements [Matcher].
func (m *filePathMatcher) Match(filePath string) bool {
	if filePath == "" {
		return false
	}

	return m.pattern.Match(filePath)
}
