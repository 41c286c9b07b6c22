// Package log provides the leveled logging facade used by the operator extension.
//
// Records are only formatted and forwarded to a Sink when their level is at least as severe as the current
// Threshold; disabled statements return before any formatting takes place. Trace statements are gated at compile
// time instead, see TraceEnabled.
package log

import (
	"fmt"
	"runtime"

	"go.uber.org/atomic"
)

// bufPoolSize is the number of idle format buffers retained by a Facade.
const bufPoolSize = 64

// Options used to create a Facade, the zero value is valid and results in a Facade which discards everything.
type Options struct {
	// Sink receives every record which passes the level check, defaults to a sink which discards records.
	Sink Sink

	// Threshold is queried on each call, defaults to LevelInfo.
	Threshold Threshold

	// BufferSize bounds the formatted message, see FormatBounded. Defaults to DefaultBufferSize.
	BufferSize int
}

// Stats are counters describing the records a Facade has handled.
type Stats struct {
	// Emitted is the number of records successfully handed to the sink.
	Emitted uint64

	// Truncated is the number of records whose message didn't fit in the buffer.
	Truncated uint64

	// SinkPanics is the number of records lost because the sink panicked.
	SinkPanics uint64
}

// Facade exposes level gated logging functions which forward to a Sink. It's safe for concurrent use provided the
// sink is.
type Facade struct {
	sink      Sink
	threshold Threshold
	bufSize   int
	pool      *bufPool

	emitted    atomic.Uint64
	truncated  atomic.Uint64
	sinkPanics atomic.Uint64
}

// New creates a Facade using the given options.
func New(opts Options) *Facade {
	if opts.Sink == nil {
		opts.Sink = nopSink{}
	}

	if opts.Threshold == nil {
		opts.Threshold = StaticThreshold(LevelInfo)
	}

	if opts.BufferSize < 2 {
		opts.BufferSize = DefaultBufferSize
	}

	return &Facade{
		sink:      opts.Sink,
		threshold: opts.Threshold,
		bufSize:   opts.BufferSize,
		pool:      newBufPool(bufPoolSize, opts.BufferSize),
	}
}

// Enabled returns whether a record at the given level would currently be emitted. It can be used to guard the
// computation of expensive arguments.
func (f *Facade) Enabled(level Level) bool {
	if level == LevelTrace {
		return TraceEnabled
	}

	return level < LevelOff && level >= f.threshold.Level()
}

// Tracef logs the provided information at the trace level, including the location of the caller.
//
// NOTE: Without the 'omnilog_trace' build tag this function does nothing and ignores the threshold entirely.
func (f *Facade) Tracef(format string, args ...any) {
	if !TraceEnabled {
		return
	}

	f.emit(LevelTrace, caller(1), format, args)
}

// Debugf logs the provided information at the debug level.
func (f *Facade) Debugf(format string, args ...any) {
	if !f.Enabled(LevelDebug) {
		return
	}

	f.emit(LevelDebug, "", format, args)
}

// Infof logs the provided information at the info level.
func (f *Facade) Infof(format string, args ...any) {
	if !f.Enabled(LevelInfo) {
		return
	}

	f.emit(LevelInfo, "", format, args)
}

// Warnf logs the provided information at the warn level.
func (f *Facade) Warnf(format string, args ...any) {
	if !f.Enabled(LevelWarn) {
		return
	}

	f.emit(LevelWarn, "", format, args)
}

// Errorf logs the provided information at the error level.
func (f *Facade) Errorf(format string, args ...any) {
	if !f.Enabled(LevelError) {
		return
	}

	f.emit(LevelError, "", format, args)
}

// Logf logs the provided information at the given level, most use cases should be through the functions above.
func (f *Facade) Logf(level Level, format string, args ...any) {
	if !f.Enabled(level) {
		return
	}

	var location string
	if level == LevelTrace {
		location = caller(1)
	}

	f.emit(level, location, format, args)
}

// Stats returns a snapshot of the counters for this Facade.
func (f *Facade) Stats() Stats {
	return Stats{
		Emitted:    f.emitted.Load(),
		Truncated:  f.truncated.Load(),
		SinkPanics: f.sinkPanics.Load(),
	}
}

// emit formats the message and hands it to the sink. Logging is best effort, a panicking sink is counted and
// swallowed so that it can't change the control flow of the caller.
func (f *Facade) emit(level Level, location, format string, args []any) {
	defer func() {
		if r := recover(); r != nil {
			f.sinkPanics.Inc()
		}
	}()

	buf, truncated := FormatBounded(f.pool.get(), f.bufSize, format, args...)
	if truncated {
		f.truncated.Inc()
	}

	rec := Record{Level: level, Message: string(buf), Caller: location}

	f.pool.put(buf)
	f.sink.Log(rec)
	f.emitted.Inc()
}

// caller returns the "file:line function" of the frame skip levels above the function calling caller.
func caller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}

	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}

	return fmt.Sprintf("%s:%d %s", file, line, name)
}
