package fangs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/bmerge/fangs"
)

func testStyles() fang.Styles {
	return fang.Styles{
		ErrorHeader: lipgloss.NewStyle().SetString("Error"),
		ErrorText:   lipgloss.NewStyle(),
		Program: fang.Program{
			Flag: lipgloss.NewStyle(),
		},
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want string
	}{
		"simple error": {
			err: errors.New("something went wrong"),
			want: strings.Join([]string{
				"Error",
				"  something went wrong",
				"",
				"",
			}, "\n"),
		},
		"multi-line error": {
			err: errors.New("line1\nline2\nline3"),
			want: strings.Join([]string{
				"Error",
				"  line1",
				"  line2",
				"  line3",
				"",
				"",
			}, "\n"),
		},
		"usage error flag needs argument": {
			err: errors.New("flag needs an argument: --config"),
			want: strings.Join([]string{
				"Error",
				"  flag needs an argument: --config",
				"",
				"Try --help for usage.",
				"",
				"",
			}, "\n"),
		},
		"usage error unknown flag": {
			err: errors.New("unknown flag: --foo"),
			want: strings.Join([]string{
				"Error",
				"  unknown flag: --foo",
				"",
				"Try --help for usage.",
				"",
				"",
			}, "\n"),
		},
		"usage error unknown shorthand flag": {
			err: errors.New("unknown shorthand flag: 'x' in -xyz"),
			want: strings.Join([]string{
				"Error",
				"  unknown shorthand flag: 'x' in -xyz",
				"",
				"Try --help for usage.",
				"",
				"",
			}, "\n"),
		},
		"usage error unknown command": {
			err: errors.New(`unknown command "foo" for "bmerge"`),
			want: strings.Join([]string{
				"Error",
				`  unknown command "foo" for "bmerge"`,
				"",
				"Try --help for usage.",
				"",
				"",
			}, "\n"),
		},
		"usage error invalid argument": {
			err: errors.New(`invalid argument "foo" for "--count"`),
			want: strings.Join([]string{
				"Error",
				`  invalid argument "foo" for "--count"`,
				"",
				"Try --help for usage.",
				"",
				"",
			}, "\n"),
		},
		"non-usage error with flag word": {
			err: errors.New("flagged as incorrect"),
			want: strings.Join([]string{
				"Error",
				"  flagged as incorrect",
				"",
				"",
			}, "\n"),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			styles := testStyles()
			fangs.ErrorHandler(&buf, styles, tc.err)

			assert.Equal(t, tc.want, buf.String())
		})
	}
}
