package log

import "go.uber.org/atomic"

// Threshold provides the current minimum severity which should be emitted. It's read on every (enabled or not) log
// call so implementations should be cheap and safe for concurrent use.
type Threshold interface {
	Level() Level
}

// StaticThreshold is a Threshold which never changes.
type StaticThreshold Level

// Level implements Threshold.
func (s StaticThreshold) Level() Level {
	return Level(s)
}

// AtomicThreshold is a Threshold which may be updated whilst other goroutines are logging, for example when the
// configuration file is reloaded.
type AtomicThreshold struct {
	level atomic.Uint32
}

var (
	_ Threshold = StaticThreshold(LevelInfo)
	_ Threshold = (*AtomicThreshold)(nil)
)

// NewAtomicThreshold returns an AtomicThreshold initialised to the given level.
func NewAtomicThreshold(level Level) *AtomicThreshold {
	t := &AtomicThreshold{}
	t.level.Store(uint32(level))

	return t
}

// Level implements Threshold.
func (a *AtomicThreshold) Level() Level {
	return Level(a.level.Load())
}

// SetLevel updates the threshold, returning the previous value.
func (a *AtomicThreshold) SetLevel(level Level) Level {
	return Level(a.level.Swap(uint32(level)))
}
