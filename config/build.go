package config

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/omnioperator/omnilog/log"
	"github.com/omnioperator/omnilog/sink"
)

// BuildOptions supplies the process resources used when building a Runtime.
type BuildOptions struct {
	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Registerer is used when metrics are enabled, defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// Extra is an additional sink which receives every record, for example a sink.Ring for crash reports.
	Extra log.Sink

	// Clock is passed to the line writer, mostly useful for testing.
	Clock sink.Clock
}

// Runtime is the result of building a Config.
type Runtime struct {
	Facade *log.Facade

	// Threshold may be updated to change the level at runtime, see Loader.Watch.
	Threshold *log.AtomicThreshold

	sink log.Sink
}

// Build creates the sink chain (output, optional rate limit and metrics) and the Facade for the given configuration.
func Build(cfg Config, opts BuildOptions) (*Runtime, error) {
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.ThresholdLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	writerOpts := sink.WriterOptions{Format: sink.Format(cfg.Format), Color: cfg.Color, Clock: opts.Clock}

	var out log.Sink

	switch cfg.Output {
	case OutputStdout:
		out = sink.NewWriter(opts.Stdout, writerOpts)
	case OutputStderr:
		out = sink.NewWriter(opts.Stderr, writerOpts)
	case OutputFile:
		out = sink.NewRotatingFile(sink.FileOptions{
			Path:       cfg.File.Path,
			MaxSizeMB:  cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAgeDays: cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}, writerOpts)
	}

	if opts.Extra != nil {
		out = sink.Tee(out, opts.Extra)
	}

	if cfg.RateLimit.PerSecond > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), max(cfg.RateLimit.Burst, 1))
		out = sink.RateLimited(out, limiter, log.LevelError)
	}

	if cfg.Metrics {
		metrics, err := sink.Metrics(out, opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to setup metrics: %w", err)
		}

		out = metrics
	}

	threshold := log.NewAtomicThreshold(level)

	return &Runtime{
		Facade:    log.New(log.Options{Sink: out, Threshold: threshold, BufferSize: cfg.BufferSize}),
		Threshold: threshold,
		sink:      out,
	}, nil
}

// Close releases any resources held by the sinks, e.g. the log file.
func (r *Runtime) Close() error {
	if c, ok := r.sink.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
