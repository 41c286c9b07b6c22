//go:build !omnilog_trace

package log

// TraceEnabled reports whether trace statements were compiled in, see the 'omnilog_trace' build tag.
//
// NOTE: As this is a constant the body of Tracef is dead code in normal builds and the call is inlined away.
const TraceEnabled = false
