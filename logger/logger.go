// Copyright © 2026 The mpvedit authors

// Package logger provides structured logging for mpvedit.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger.
type Logger struct {
	log *logrus.Logger
}

// Entry accumulates fields for a single log line.
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New creates a logger writing to output at the named level. Unknown level
// names fall back to info; a nil output means stderr.
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("panic", io.Discard)
}

var std atomic.Pointer[Logger]

func init() { std.Store(New("info", nil)) }

// Default returns the process-wide logger. It is safe to call while
// another goroutine calls SetDefault.
func Default() *Logger { return std.Load() }

// SetDefault replaces the process-wide logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// Level returns the configured level name.
func (l *Logger) Level() string { return l.log.GetLevel().String() }

// Debug starts a debug entry.
func (l *Logger) Debug() *Entry { return l.newEntry(logrus.DebugLevel) }

// Info starts an info entry.
func (l *Logger) Info() *Entry { return l.newEntry(logrus.InfoLevel) }

// Warn starts a warning entry.
func (l *Logger) Warn() *Entry { return l.newEntry(logrus.WarnLevel) }

// Error starts an error entry.
func (l *Logger) Error() *Entry { return l.newEntry(logrus.ErrorLevel) }

func (l *Logger) newEntry(level logrus.Level) *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: level}
}

// Str adds a string field.
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Int adds an int field.
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool adds a bool field.
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err adds an error field.
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Dur adds a duration field in milliseconds.
func (e *Entry) Dur(key string, d time.Duration) *Entry {
	e.entry = e.entry.WithField(key, float64(d.Microseconds())/1000.0)
	return e
}

// Msg emits the entry.
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}
