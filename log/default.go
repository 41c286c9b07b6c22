package log

import "go.uber.org/atomic"

// std is the Facade used by the package level functions below, it discards everything until SetDefault is called.
var std = atomic.NewPointer(New(Options{}))

// SetDefault sets the Facade used by the package level logging functions. A nil Facade restores the default which
// discards all records.
func SetDefault(f *Facade) {
	if f == nil {
		f = New(Options{})
	}

	std.Store(f)
}

// Default returns the Facade used by the package level logging functions.
func Default() *Facade {
	return std.Load()
}

// Enabled reports whether the default Facade would emit a record at the given level.
func Enabled(level Level) bool {
	return Default().Enabled(level)
}

// Tracef logs the provided information at the trace level using the default Facade.
func Tracef(format string, args ...any) {
	if !TraceEnabled {
		return
	}

	Default().emit(LevelTrace, caller(1), format, args)
}

// Debugf logs the provided information at the debug level using the default Facade.
func Debugf(format string, args ...any) {
	if f := Default(); f.Enabled(LevelDebug) {
		f.emit(LevelDebug, "", format, args)
	}
}

// Infof logs the provided information at the info level using the default Facade.
func Infof(format string, args ...any) {
	if f := Default(); f.Enabled(LevelInfo) {
		f.emit(LevelInfo, "", format, args)
	}
}

// Warnf logs the provided information at the warn level using the default Facade.
func Warnf(format string, args ...any) {
	if f := Default(); f.Enabled(LevelWarn) {
		f.emit(LevelWarn, "", format, args)
	}
}

// Errorf logs the provided information at the error level using the default Facade.
func Errorf(format string, args ...any) {
	if f := Default(); f.Enabled(LevelError) {
		f.emit(LevelError, "", format, args)
	}
}

// Logf allows raw access to the default Facade, most use cases should be through the functions above.
func Logf(level Level, format string, args ...any) {
	f := Default()
	if !f.Enabled(level) {
		return
	}

	var location string
	if level == LevelTrace {
		location = caller(1)
	}

	f.emit(level, location, format, args)
}
