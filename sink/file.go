package sink

import "gopkg.in/natefinch/lumberjack.v2"

// FileOptions configures a size rotated log file.
type FileOptions struct {
	// Path of the active log file, rotated files are created alongside it.
	Path string

	// MaxSizeMB is the size at which the file is rotated, zero uses the lumberjack default of 100MB.
	MaxSizeMB int

	// MaxBackups is the number of rotated files to retain, zero retains all of them.
	MaxBackups int

	// MaxAgeDays is the number of days to retain rotated files, zero disables age based removal.
	MaxAgeDays int

	// Compress rotated files using gzip.
	Compress bool
}

// NewRotatingFile returns a Writer which writes to a size rotated file. The file is opened lazily on the first write
// and closed by Writer.Close.
func NewRotatingFile(file FileOptions, opts WriterOptions) *Writer {
	rotator := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   file.Compress,
	}

	w := NewWriter(rotator, opts)
	w.closer = rotator

	return w
}
