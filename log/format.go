package log

import (
	"fmt"
	"unicode/utf8"
)

// DefaultBufferSize is the size of the buffer which messages are formatted into. Like a C string buffer one byte is
// reserved, so the longest message is DefaultBufferSize-1 bytes.
const DefaultBufferSize = 1024

// boundedBuffer is an io.Writer which silently discards anything past its limit.
type boundedBuffer struct {
	buf       []byte
	limit     int
	truncated bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)

	room := b.limit - len(b.buf)
	if n > room {
		p = p[:max(room, 0)]
		b.truncated = true
	}

	b.buf = append(b.buf, p...)

	// Always report a full write, the truncation is recorded above.
	return n, nil
}

// FormatBounded formats according to format and appends the result to dst, writing at most size-1 bytes. Overflow is
// truncated rather than reported as an error and a multi-byte rune which straddles the limit is dropped whole, so the
// result is valid UTF-8 whenever the formatted text was.
//
// A size less than two falls back to DefaultBufferSize.
func FormatBounded(dst []byte, size int, format string, args ...any) ([]byte, bool) {
	if size < 2 {
		size = DefaultBufferSize
	}

	b := boundedBuffer{buf: dst, limit: len(dst) + size - 1}

	fmt.Fprintf(&b, format, args...)

	if b.truncated {
		b.buf = trimPartialRune(b.buf)
	}

	return b.buf, b.truncated
}

// trimPartialRune removes a trailing incomplete UTF-8 sequence.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}

		if !utf8.FullRune(b[i:]) {
			return b[:i]
		}

		return b
	}

	return b
}
