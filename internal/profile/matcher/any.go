package matcher

import "fmt"

// anyMatcher matches if any sub-matcher matches (OR logic).
type anyMatcher struct {
	matchers []Matcher
}

// Any creates a new [Matcher] that matches if ANY sub-matcher matches (OR
// logic). Evaluation short-circuits on the first matching matcher.
//
// Returns false if no matchers are provided.
//
// Panics if any matcher is nil.
//
// This is useful for applying the same profile to multiple path shapes:
//
//	matcher.Any(
//	    matcher.FilePath(filepaths.MustPattern("**/*.tf")),
//	    matcher.FilePath(filepaths.MustPattern("**/*.tfvars")),
//	)
func Any(matchers ...Matcher) Matcher {
	for i, m := range matchers {
		if m == nil {
			panic(fmt.Sprintf("matcher.Any: matcher at index %d is nil", i))
		}
	}

	return &anyMatcher{matchers: matchers}
}

// Match implements [Matcher].
func (m *anyMatcher) Match(filePath string) bool {
	for _, matcher := range m.matchers {
		if matcher.Match(filePath) {
			return true
		}
	}

	return false
}
