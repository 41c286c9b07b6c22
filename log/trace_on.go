//go:build omnilog_trace

package log

// TraceEnabled reports whether trace statements were compiled in, see the 'omnilog_trace' build tag.
const TraceEnabled = true
