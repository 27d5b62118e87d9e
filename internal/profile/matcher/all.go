package matcher

import "fmt"

// allMatcher matches if all sub-matchers match (AND logic).
type allMatcher struct {
	matchers []Matcher
}

// All creates a new [Matcher] that matches if ALL sub-matchers match (AND
// logic). Evaluation short-circuits on the first non-matching matcher.
//
// Returns true if no matchers are provided.
//
// Panics if any matcher is nil.
//
//	// Matches go.sum files anywhere in the tree.
//	matcher.All(
//	    matcher.FilePath(filepaths.MustPattern("**/go.sum")),
//	)
func All(matchers ...Matcher) Matcher {
	for i, m := range matchers {
		if m == nil {
			panic(fmt.Sprintf("matcher.All: matcher at index %d is nil", i))
		}
	}

	return &allMatcher{matchers: matchers}
}

// Match implements [Matcher].
func (m *allMatcher) Match(filePath string) bool {
	for _, matcher := range m.matchers {
		if !matcher.Match(filePath) {
			return false
		}
	}

	return true
}
