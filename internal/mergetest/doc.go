// Package mergetest provides test utilities shared across this module's
// package tests: dedented test-input strings and fixtures for three-way
// merge scenarios.
//
// # Writing Readable Test Inputs
//
// [Input] strips common indentation from heredoc-style strings, letting
// base/ours/theirs fixtures be written as naturally indented Go source:
//
//	base := mergetest.Input(`
//		key: value
//		nested:
//		  child: data
//	`)
//
// [JoinLF] builds multi-line expected output with explicit line endings:
//
//	want := mergetest.JoinLF(
//		"line1",
//		"line2",
//	)
//
// # Building Triple Fixtures
//
// [Triple] bundles base/ours/theirs byte slices for a scenario, and
// [Conflicting] builds a [Triple] whose ours and theirs sides both change
// the same base region in incompatible ways, guaranteeing a conflict.
package mergetest
