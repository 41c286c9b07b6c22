package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/omnioperator/omnilog/log"
)

// MetricsSink counts the records forwarded to the next sink, by level.
type MetricsSink struct {
	next    log.Sink
	records *prometheus.CounterVec
}

var (
	_ log.Sink  = (*MetricsSink)(nil)
	_ io.Closer = (*MetricsSink)(nil)
)

// Metrics wraps next, registering the 'omnilog_records_total' counter with the given registerer. When the counter is
// already registered (e.g. the logging configuration was rebuilt) the existing counter is reused.
func Metrics(next log.Sink, registerer prometheus.Registerer) (*MetricsSink, error) {
	records := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnilog",
		Name:      "records_total",
		Help:      "Number of log records emitted, by level.",
	}, []string{"level"})

	err := registerer.Register(records)

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("collector registered with a different type: %w", err)
		}

		records, err = existing, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to register records counter: %w", err)
	}

	return &MetricsSink{next: next, records: records}, nil
}

// Log implements log.Sink.
func (m *MetricsSink) Log(rec log.Record) {
	m.next.Log(rec)
	m.records.WithLabelValues(rec.Level.String()).Inc()
}

// Close closes the wrapped sink.
func (m *MetricsSink) Close() error {
	return closeSink(m.next)
}
