package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/bmerge/style"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty":                  {input: "", want: nil},
		"single line no newline": {input: "one", want: []string{"one"}},
		"trailing newline":       {input: "one\ntwo\n", want: []string{"one", "two"}},
		"no trailing newline":    {input: "one\ntwo", want: []string{"one", "two"}},
		"blank lines preserved":  {input: "one\n\ntwo\n", want: []string{"one", "", "two"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, splitLines([]byte(tc.input)))
		})
	}
}

func TestTruncateLine(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		line  string
		width int
		want  string
	}{
		"fits exactly":       {line: "abcde", width: 5, want: "abcde"},
		"shorter than width": {line: "ab", width: 5, want: "ab"},
		"truncated":          {line: "abcdefgh", width: 5, want: "abcd…"},
		"disabled at zero":   {line: "abcdefgh", width: 0, want: "abcdefgh"},
		"width one":          {line: "abcdefgh", width: 1, want: "a"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, truncateLine(tc.line, tc.width))
		})
	}
}

func TestRenderDiff(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	s := style.DefaultTheme(style.Dark)
	renderDiff(&buf, s, 80, []byte("one\ntwo\nthree\n"), []byte("one\ntwo-changed\nthree\n"))

	out := buf.String()
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "-two")
	assert.Contains(t, out, "+two-changed")
	assert.Contains(t, out, "three")
}
