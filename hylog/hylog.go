package hylog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Sink selects where a Logger's events are written.
type Sink int

const (
	// SinkConsole writes human-readable lines to stdout.
	SinkConsole Sink = iota
	// SinkFile writes structured JSON lines to Options.FilePath.
	SinkFile
	// SinkBoth writes to both destinations at once.
	SinkBoth
)

// Options configures New.
type Options struct {
	Sink     Sink
	FilePath string
	Verbose  bool
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns SinkConsole, FilePath "hotyard.log", Verbose false.
func DefaultOptions() Options {
	return Options{Sink: SinkConsole, FilePath: "hotyard.log"}
}

// WithSink selects the destination(s) events are written to.
func WithSink(s Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithFilePath sets the path New opens for SinkFile and SinkBoth.
func WithFilePath(path string) Option {
	return func(o *Options) { o.FilePath = path }
}

// WithVerbose lowers the minimum level from Info to Debug — the
// portable substitute for the planner CLI's "verbose" flag enabling
// periodic progress printing.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// nopCloser is returned alongside a console-only Logger, which owns no
// file handle to release.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a zerolog.Logger over the selected sink. The returned
// io.Closer releases any opened file handle and must be closed by the
// caller on shutdown.
func New(opts ...Option) (zerolog.Logger, io.Closer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	level := zerolog.InfoLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	switch o.Sink {
	case SinkConsole:
		return zerolog.New(console).Level(level).With().Timestamp().Logger(), nopCloser{}, nil

	case SinkFile:
		f, err := openLogFile(o.FilePath)
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		return zerolog.New(f).Level(level).With().Timestamp().Logger(), f, nil

	case SinkBoth:
		f, err := openLogFile(o.FilePath)
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		multi := zerolog.MultiLevelWriter(console, f)
		return zerolog.New(multi).Level(level).With().Timestamp().Logger(), f, nil

	default:
		return zerolog.Logger{}, nil, fmt.Errorf("%w: %d", ErrUnknownSink, o.Sink)
	}
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("hylog: opening log file %q: %w", path, err)
	}
	return f, nil
}
