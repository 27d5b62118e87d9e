package matcher

// Always creates a new [Matcher] that always matches.
func Always() Matcher {
	return Func(func(_ string) bool {
		return true
	})
}
