package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is a map of structured logging fields
type Fields map[string]any

// Logger defines the structured logging interface used across the library
type Logger interface {
	// Debug logs a message at debug level
	Debug(msg string, fields ...Fields)

	// Info logs a message at info level
	Info(msg string, fields ...Fields)

	// Warn logs a message at warn level
	Warn(msg string, fields ...Fields)

	// Error logs an error with a message at error level
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with the given fields attached
	WithFields(fields Fields) Logger
}

// logrusLogger implements Logger on top of logrus
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger writing to stderr at the given level
func NewLogger(level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Debug(msg string, fields ...Fields) {
	l.entry.WithFields(mergeFields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...Fields) {
	l.entry.WithFields(mergeFields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...Fields) {
	l.entry.WithFields(mergeFields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(err error, msg string, fields ...Fields) {
	entry := l.entry.WithFields(mergeFields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// mergeFields flattens variadic Fields into a single logrus.Fields map
func mergeFields(fields []Fields) logrus.Fields {
	merged := make(logrus.Fields)
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewLogger(logrus.InfoLevel)
)

// GetGlobalLogger returns the process-wide logger
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetGlobalLogger replaces the process-wide logger
// Useful for routing library logs into an application's logging setup
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// WithFields returns the global logger with fields attached
func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}

// Debug logs a message at debug level using the global logger
func Debug(msg string, fields ...Fields) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Info logs a message at info level using the global logger
func Info(msg string, fields ...Fields) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a message at warn level using the global logger
func Warn(msg string, fields ...Fields) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error with a message using the global logger
func Error(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Error(err, msg, fields...)
}
