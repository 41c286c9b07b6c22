package log

//go:generate mockgen -source=sink.go -destination=mock_sink_test.go -package=log

// Record is a single formatted log statement. Records are built per call and passed to the sink by value; the facade
// does not retain them.
type Record struct {
	Level   Level
	Message string

	// Caller is the "file:line function" location of the statement, it's only populated for trace records.
	Caller string
}

// Sink is the destination for records which passed the level check, e.g. the console, a file or a remote collector.
//
// NOTE: Sinks may be called concurrently from any number of goroutines and are responsible for their own locking.
type Sink interface {
	Log(rec Record)
}

// SinkFunc allows using an ordinary function as a Sink.
type SinkFunc func(rec Record)

// Log implements Sink.
func (f SinkFunc) Log(rec Record) {
	f(rec)
}

// nopSink is the no operations sink - ie, a nil sink that doesn't log anything.
type nopSink struct{}

// Log method for the nopSink which does nothing.
func (nopSink) Log(_ Record) {}
