// Package matcher determines which merge profile applies to a given file.
package matcher

// Matcher determines whether a profile should be applied to a file.
//
// Matchers are evaluated in registration order; first match wins.
//
// See [FilePath], [Any], [All], [Always], and [Func] for implementations.
type Matcher interface {
	// Match returns true if the matcher's criteria are satisfied by the file path.
	Match(filePath string) bool
}

// Func adapts a function to the [Matcher] interface.
type Func func(filePath string) bool

// Match implements [Matcher].
func (f Func) Match(filePath string) bool {
	return f(filePath)
}
