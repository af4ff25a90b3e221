package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
	"github.com/philipp01105/tzlog/handler/consolehandler"
)

// EnvLevel names the variable InitFromEnv reads the minimum level from.
const EnvLevel = "TZLOG_LEVEL"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(InfoLevel, formatter.DefaultTimeZoneConfig())
}

// New builds a Logger that writes to stderr through a TimeZoneFormatter
// sharing tz.
func New(level Level, tz *formatter.TimeZoneConfig) *Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: formatter.NewTimeZoneFormatter(tz, formatter.Config{}),
	})
	return NewBuilder().
		WithHandler(h).
		WithLevel(level).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Init installs a stderr logger using tz as the process-wide default.
func Init(level Level, tz *formatter.TimeZoneConfig) *Logger {
	l := New(level, tz)
	SetDefault(l)
	return l
}

// InitFromEnv is Init with the level taken from TZLOG_LEVEL (default
// info) and the timezone from formatter.TimeZoneConfigFromEnv.
func InitFromEnv() (*Logger, error) {
	level := InfoLevel
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		var known bool
		if level, known = LookupLevel(v); !known {
			return nil, fmt.Errorf("%s: unknown level %q", EnvLevel, v)
		}
	}
	tz, err := formatter.TimeZoneConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return Init(level, tz), nil
}

// Package-level functions log through Default. They call log directly so
// caller information points at the calling code.

// Trace logs at TraceLevel using the default logger.
func Trace(msg string, fields ...core.Field) { Default().log(core.TraceLevel, msg, fields) }

// Debug logs at DebugLevel using the default logger.
func Debug(msg string, fields ...core.Field) { Default().log(core.DebugLevel, msg, fields) }

// Info logs at InfoLevel using the default logger.
func Info(msg string, fields ...core.Field) { Default().log(core.InfoLevel, msg, fields) }

// Warn logs at WarnLevel using the default logger.
func Warn(msg string, fields ...core.Field) { Default().log(core.WarnLevel, msg, fields) }

// Error logs at ErrorLevel using the default logger.
func Error(msg string, fields ...core.Field) { Default().log(core.ErrorLevel, msg, fields) }

// Fatal logs at FatalLevel using the default logger, then exits with status 1.
func Fatal(msg string, fields ...core.Field) {
	Default().log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Panic logs at PanicLevel using the default logger, then panics.
func Panic(msg string, fields ...core.Field) {
	Default().log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Tracef is Trace with a Sprintf message.
func Tracef(format string, args ...interface{}) { Default().logf(core.TraceLevel, format, args) }

// Debugf is Debug with a Sprintf message.
func Debugf(format string, args ...interface{}) { Default().logf(core.DebugLevel, format, args) }

// Infof is Info with a Sprintf message.
func Infof(format string, args ...interface{}) { Default().logf(core.InfoLevel, format, args) }

// Warnf is Warn with a Sprintf message.
func Warnf(format string, args ...interface{}) { Default().logf(core.WarnLevel, format, args) }

// Errorf is Error with a Sprintf message.
func Errorf(format string, args ...interface{}) { Default().logf(core.ErrorLevel, format, args) }

// Fatalf is Fatal with a Sprintf message.
func Fatalf(format string, args ...interface{}) {
	Default().logf(core.FatalLevel, format, args)
	osExit(1)
}

// Panicf is Panic with a Sprintf message.
func Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	Default().log(core.PanicLevel, msg, nil)
	panic(msg)
}

// With returns the default logger extended with fields.
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}

// Named returns the default logger with its target replaced.
func Named(target string) *Logger {
	return Default().Named(target)
}
