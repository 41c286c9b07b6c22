package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type argumentsTestCase struct {
	name      string
	arguments []string
	expected  []string
}

func TestUserTagArguments(t *testing.T) {
	cases := []argumentsTestCase{
		{
			name:     "nil",
			expected: []string{},
		},
		{
			name:      "nothingToTag",
			arguments: []string{"emit", "--config", "omnilog.yaml", "info"},
			expected:  []string{"emit", "--config", "omnilog.yaml", "info"},
		},
		{
			name:      "tagMultiple",
			arguments: []string{"-t", "lineitem", "--user", "spark", "--filter", "l_orderkey"},
			expected: []string{
				"-t", "<ud>lineitem</ud>", "--user", "<ud>spark</ud>", "--filter", "<ud>l_orderkey</ud>",
			},
		},
		{
			name:      "trailingFlagWithoutValue",
			arguments: []string{"emit", "--user"},
			expected:  []string{"emit", "--user"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, UserTagArguments(tc.arguments, []string{"-t", "--user", "--filter"}))
		})
	}
}

func TestMaskArguments(t *testing.T) {
	cases := []argumentsTestCase{
		{
			name:      "empty",
			arguments: []string{},
			expected:  []string{},
		},
		{
			name:      "maskFlagWithoutValue",
			arguments: []string{"-u", "user", "-p"},
			expected:  []string{"-u", "user", "-p"},
		},
		{
			name:      "maskFlagFollowedByFlag",
			arguments: []string{"--password", "--verbose"},
			expected:  []string{"--password", "--verbose"},
		},
		{
			name:      "maskMultiple",
			arguments: []string{"--password", "pass", "-u", "user", "-p", "p1"},
			expected:  []string{"--password", "*****", "-u", "user", "-p", "*****"},
		},
		{
			name:      "doNotMaskLongPrefix",
			arguments: []string{"--password", "pass", "--passwords-file", "file"},
			expected:  []string{"--password", "*****", "--passwords-file", "file"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, MaskArguments(tc.arguments, []string{"-p", "--password"}))
		})
	}
}

func TestMaskAndUserTagArguments(t *testing.T) {
	require.Equal(t,
		"--password ***** -u <ud>user</ud> -p",
		MaskAndUserTagArguments(
			[]string{"--password", "pass", "-u", "user", "-p"},
			[]string{"-u", "--user"},
			[]string{"-p", "--password"},
		),
	)
}

func TestUserDataFormatting(t *testing.T) {
	out, _ := FormatBounded(nil, DefaultBufferSize, "opened %s", UserData("lineitem"))
	require.Equal(t, "opened <ud>lineitem</ud>", string(out))
}

func removeTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}

func TestUserDataSlog(t *testing.T) {
	var b bytes.Buffer

	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{ReplaceAttr: removeTime}))

	l.Info("scanning table", UserDataAttr("table", "line item"))
	l.Info("and column", "column", UserData("l_orderkey"))

	require.Equal(t, `level=INFO msg="scanning table" table="<ud>line item</ud>"
level=INFO msg="and column" column=<ud>l_orderkey</ud>
`, b.String())
}
