// Package sink provides log.Sink implementations, from plain line writers to adapters for the logging libraries used
// by the host process.
package sink

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/atomic"

	"github.com/omnioperator/omnilog/log"
)

// Format is the encoding used by a Writer.
type Format string

const (
	// FormatText writes "<time> <TAG> <message>" lines, line breaks in the message are escaped.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Clock provides the time stamps for records.
type Clock interface {
	Now() time.Time
}

// CurrentClock is a Clock which returns the current time.
type CurrentClock struct{}

// Now implements Clock.
func (CurrentClock) Now() time.Time {
	return time.Now()
}

// WriterOptions controls how a Writer encodes records.
type WriterOptions struct {
	// Format defaults to FormatText.
	Format Format

	// Color enables colored level tags for the text format, regardless of whether the output is a terminal.
	Color bool

	// Clock defaults to CurrentClock.
	Clock Clock

	// InstanceID is included in JSON records to tell processes apart, a random UUID is generated when empty.
	InstanceID string
}

// Writer is a Sink which encodes records as lines to an io.Writer.
//
// NOTE: Write errors are counted rather than returned, see Failures.
type Writer struct {
	lock   sync.Mutex
	w      io.Writer
	closer io.Closer
	opts   WriterOptions
	buf    []byte
	tags   map[log.Level]string

	failures atomic.Uint64
}

var (
	_ log.Sink  = (*Writer)(nil)
	_ io.Closer = (*Writer)(nil)
)

// NewWriter returns a Writer which writes to w, the caller remains responsible for closing w.
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	if opts.Format == "" {
		opts.Format = FormatText
	}

	if opts.Clock == nil {
		opts.Clock = CurrentClock{}
	}

	if opts.InstanceID == "" {
		opts.InstanceID = uuid.NewString()
	}

	return &Writer{w: w, opts: opts, tags: levelTags(opts.Color)}
}

// jsonRecord is the JSON encoding of a log.Record.
type jsonRecord struct {
	Time     string `json:"time"`
	Level    string `json:"level"`
	Message  string `json:"msg"`
	Caller   string `json:"caller,omitempty"`
	Instance string `json:"instance"`
}

// lineEscaper keeps a text record on a single line.
var lineEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`)

// Log implements log.Sink.
func (w *Writer) Log(rec log.Record) {
	now := w.opts.Clock.Now().UTC().Format(time.RFC3339Nano)

	w.lock.Lock()
	defer w.lock.Unlock()

	w.buf = w.buf[:0]

	switch w.opts.Format {
	case FormatJSON:
		encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(jsonRecord{
			Time:     now,
			Level:    rec.Level.String(),
			Message:  rec.Message,
			Caller:   rec.Caller,
			Instance: w.opts.InstanceID,
		})
		if err != nil {
			w.failures.Inc()
			return
		}

		w.buf = append(w.buf, encoded...)
	default:
		w.buf = append(w.buf, now...)
		w.buf = append(w.buf, ' ')
		w.buf = append(w.buf, w.tag(rec.Level)...)
		w.buf = append(w.buf, ' ')
		w.buf = append(w.buf, lineEscaper.Replace(rec.Message)...)

		if rec.Caller != "" {
			w.buf = append(w.buf, " ("...)
			w.buf = append(w.buf, rec.Caller...)
			w.buf = append(w.buf, ')')
		}
	}

	w.buf = append(w.buf, '\n')

	if _, err := w.w.Write(w.buf); err != nil {
		w.failures.Inc()
	}
}

// Failures returns the number of records which couldn't be encoded or written.
func (w *Writer) Failures() uint64 {
	return w.failures.Load()
}

// Close closes the underlying file when the Writer owns it, e.g. when created with NewRotatingFile.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}

	return w.closer.Close()
}

func (w *Writer) tag(level log.Level) string {
	if tag, ok := w.tags[level]; ok {
		return tag
	}

	return level.String()
}

// levelTags returns the (optionally colored) tag for each level.
func levelTags(colored bool) map[log.Level]string {
	attributes := map[log.Level]color.Attribute{
		log.LevelTrace: color.FgHiBlack,
		log.LevelDebug: color.FgCyan,
		log.LevelInfo:  color.FgGreen,
		log.LevelWarn:  color.FgYellow,
		log.LevelError: color.FgRed,
	}

	tags := make(map[log.Level]string, len(attributes))

	for level, attribute := range attributes {
		if !colored {
			tags[level] = level.String()
			continue
		}

		c := color.New(attribute)
		c.EnableColor()

		tags[level] = c.Sprint(level.String())
	}

	return tags
}
