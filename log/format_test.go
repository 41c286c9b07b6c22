package log

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestFormatBounded(t *testing.T) {
	type test struct {
		name      string
		size      int
		format    string
		args      []any
		expected  string
		truncated bool
	}

	tests := []test{
		{
			name:     "Fits",
			size:     16,
			format:   "x=%d",
			args:     []any{5},
			expected: "x=5",
		},
		{
			name:     "ExactlyFits",
			size:     5,
			format:   "%s",
			args:     []any{"abcd"},
			expected: "abcd",
		},
		{
			name:      "OneOver",
			size:      5,
			format:    "%s",
			args:      []any{"abcde"},
			expected:  "abcd",
			truncated: true,
		},
		{
			name:      "RuneStraddlesLimit",
			size:      5,
			format:    "abc%s",
			args:      []any{"€"},
			expected:  "abc",
			truncated: true,
		},
		{
			name:     "SizeTooSmallUsesDefault",
			size:     1,
			format:   "%s",
			args:     []any{"hello"},
			expected: "hello",
		},
		{
			name:     "BadVerbIsRenderedInline",
			size:     64,
			format:   "%d",
			args:     []any{"str"},
			expected: "%!d(string=str)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, truncated := FormatBounded(nil, test.size, test.format, test.args...)
			require.Equal(t, test.expected, string(out))
			require.Equal(t, test.truncated, truncated)
		})
	}
}

func TestFormatBoundedLargeMessage(t *testing.T) {
	out, truncated := FormatBounded(make([]byte, 0, DefaultBufferSize), DefaultBufferSize, "%s",
		strings.Repeat("a", 10_000))

	require.True(t, truncated)
	require.Len(t, out, 1023)
	require.Equal(t, DefaultBufferSize, cap(out))
}

func TestFormatBoundedMultiByteIsValidUTF8(t *testing.T) {
	for size := 2; size < 16; size++ {
		out, _ := FormatBounded(nil, size, "%s", strings.Repeat("日本", 10))
		require.True(t, utf8.Valid(out))
		require.LessOrEqual(t, len(out), size-1)
	}
}

func TestFormatBoundedAppends(t *testing.T) {
	out, truncated := FormatBounded([]byte("prefix: "), 4, "%s", "abcdef")
	require.True(t, truncated)
	require.Equal(t, "prefix: abc", string(out))
}
