package log

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a string can't be parsed into a Level.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is used to indicate the severity of a log statement. Levels are ordered, a record is only emitted when its
// level is greater than or equal to the configured threshold.
type Level uint8

const (
	// LevelTrace is the most verbose log level including finer grained informational events than debug level. Trace
	// statements are only compiled in when building with the 'omnilog_trace' tag.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained informational events that are the most useful to debug the extension.
	LevelDebug

	// LevelInfo includes informational messages that highlight the progress of events at a course-grained level.
	LevelInfo

	// LevelWarn includes expected but potentially harmful/interesting events.
	LevelWarn

	// LevelError includes error events which may still allow the extension to continue running.
	LevelError

	// LevelOff is only meaningful as a threshold, it disables all runtime gated levels.
	LevelOff
)

var levelTags = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelOff:   "OFF",
}

// String returns the fixed tag for the level e.g. "WARN".
func (l Level) String() string {
	if int(l) < len(levelTags) {
		return levelTags[l]
	}

	return fmt.Sprintf("LEVEL(%d)", uint8(l))
}

// ParseLevel parses a case-insensitive level name, "warning" is accepted as an alias for "warn" and "none" for "off".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if int(l) >= len(levelTags) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(l))
	}

	return []byte(strings.ToLower(levelTags[l])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
