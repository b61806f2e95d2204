// ABOUTME: Structured logger backed by logrus with optional rotating file output
// ABOUTME: Implements interfaces.Logger so core packages stay independent of logrus

package logrus

import (
	"fmt"
	"io"
	"os"

	"article-viewer-api/core/interfaces"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives logs through lumberjack in addition to Output
	File string

	// Output defaults to stdout
	Output io.Writer
}

// Logger implements interfaces.Logger
type Logger struct {
	entry  *log.Logger
	closer io.Closer
}

var _ interfaces.Logger = (*Logger)(nil)

// New builds a logger from opts
func New(opts Options) (*Logger, error) {
	level, err := log.ParseLevel(defaultString(opts.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := log.New()
	l.SetLevel(level)

	switch defaultString(opts.Format, "text") {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	case "text":
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	logger := &Logger{entry: l}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logger.closer = rotating
		out = io.MultiWriter(out, rotating)
	}
	l.SetOutput(out)

	return logger, nil
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
