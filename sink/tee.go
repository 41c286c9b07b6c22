package sink

import (
	"io"

	"go.uber.org/multierr"

	"github.com/omnioperator/omnilog/log"
)

// TeeSink forwards every record to each of its sinks in order.
type TeeSink []log.Sink

var (
	_ log.Sink  = TeeSink(nil)
	_ io.Closer = TeeSink(nil)
)

// Tee returns a Sink which duplicates records to all the given sinks, nil sinks are ignored.
func Tee(sinks ...log.Sink) TeeSink {
	tee := make(TeeSink, 0, len(sinks))

	for _, s := range sinks {
		if s != nil {
			tee = append(tee, s)
		}
	}

	return tee
}

// Log implements log.Sink.
func (t TeeSink) Log(rec log.Record) {
	for _, s := range t {
		s.Log(rec)
	}
}

// Close closes every sink which implements io.Closer, returning all the errors encountered.
func (t TeeSink) Close() error {
	var err error

	for _, s := range t {
		err = multierr.Append(err, closeSink(s))
	}

	return err
}

// closeSink closes s if it owns any resources.
func closeSink(s log.Sink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
