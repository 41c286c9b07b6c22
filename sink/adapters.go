package sink

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/omnioperator/omnilog/log"
)

// SlogLevelTrace is the slog level used for trace records, slog has no trace level of its own.
const SlogLevelTrace = slog.Level(-8)

// SlogSink forwards records to a slog.Logger.
type SlogSink struct {
	logger *slog.Logger
}

// Slog returns a Sink which forwards to the given slog.Logger.
func Slog(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// Log implements log.Sink.
func (s *SlogSink) Log(rec log.Record) {
	var attrs []slog.Attr
	if rec.Caller != "" {
		attrs = append(attrs, slog.String("caller", rec.Caller))
	}

	s.logger.LogAttrs(context.Background(), slogLevel(rec.Level), rec.Message, attrs...)
}

func slogLevel(level log.Level) slog.Level {
	switch level {
	case log.LevelTrace:
		return SlogLevelTrace
	case log.LevelDebug:
		return slog.LevelDebug
	case log.LevelWarn:
		return slog.LevelWarn
	case log.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ZapSink forwards records to a zap.Logger, trace records are logged at debug level.
type ZapSink struct {
	logger *zap.Logger
}

// Zap returns a Sink which forwards to the given zap.Logger.
func Zap(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

// Log implements log.Sink.
func (z *ZapSink) Log(rec log.Record) {
	var fields []zap.Field
	if rec.Caller != "" {
		fields = append(fields, zap.String("location", rec.Caller))
	}

	switch rec.Level {
	case log.LevelTrace, log.LevelDebug:
		z.logger.Debug(rec.Message, fields...)
	case log.LevelWarn:
		z.logger.Warn(rec.Message, fields...)
	case log.LevelError:
		z.logger.Error(rec.Message, fields...)
	default:
		z.logger.Info(rec.Message, fields...)
	}
}

// Close flushes any buffered log entries.
func (z *ZapSink) Close() error {
	return z.logger.Sync()
}

// LogrusSink forwards records to a logrus logger or entry.
type LogrusSink struct {
	logger logrus.FieldLogger
}

// Logrus returns a Sink which forwards to the given logrus.Logger or logrus.Entry, fields already attached to an
// entry are kept on every record.
func Logrus(logger logrus.FieldLogger) *LogrusSink {
	return &LogrusSink{logger: logger}
}

// Log implements log.Sink.
func (l *LogrusSink) Log(rec log.Record) {
	var entry *logrus.Entry
	if rec.Caller != "" {
		entry = l.logger.WithField("caller", rec.Caller)
	} else {
		entry = l.logger.WithFields(nil)
	}

	entry.Log(logrusLevel(rec.Level), rec.Message)
}

func logrusLevel(level log.Level) logrus.Level {
	switch level {
	case log.LevelTrace:
		return logrus.TraceLevel
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelWarn:
		return logrus.WarnLevel
	case log.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
