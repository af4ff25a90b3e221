package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// ErrorHandler receives errors returned by a Logger's handler. The record
// that failed has already been dropped.
type ErrorHandler func(err error)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	target        string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	onError       ErrorHandler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	target        string
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	onError       ErrorHandler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: 4,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTarget sets the target label written in every record header
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithErrorHandler sets the function that receives handler errors.
// Without one, failed records are dropped silently.
func (b *Builder) WithErrorHandler(fn ErrorHandler) *Builder {
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		target:        b.target,
		fields:        fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		onError:       b.onError,
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := l.clone()
	c.fields = newFields
	return c
}

// Named creates a new Logger that writes target in its record headers
func (l *Logger) Named(target string) *Logger {
	c := l.clone()
	c.target = target
	return c
}

// Target returns the logger's target label
func (l *Logger) Target() string {
	return l.target
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether a record at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

// log and logf sit at the same stack depth below every public method,
// which is what callerSkip counts on.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, msg, fields)
}

func (l *Logger) logf(level core.Level, format string, args []interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) emit(level core.Level, msg string, fields []core.Field) {
	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Target = l.target
	entry.Message = msg
	entry.Fields = append(entry.Fields, l.fields...)
	entry.Fields = append(entry.Fields, fields...)
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	err := l.handler.Handle(entry)
	core.PutEntry(entry)
	if err != nil && l.onError != nil {
		l.onError(err)
	}
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg string, fields ...core.Field) { l.log(core.TraceLevel, msg, fields) }

// Debug logs at DebugLevel.
func (l *Logger) Debug(msg string, fields ...core.Field) { l.log(core.DebugLevel, msg, fields) }

// Info logs at InfoLevel.
func (l *Logger) Info(msg string, fields ...core.Field) { l.log(core.InfoLevel, msg, fields) }

// Warn logs at WarnLevel.
func (l *Logger) Warn(msg string, fields ...core.Field) { l.log(core.WarnLevel, msg, fields) }

// Error logs at ErrorLevel.
func (l *Logger) Error(msg string, fields ...core.Field) { l.log(core.ErrorLevel, msg, fields) }

// Fatal logs at FatalLevel, then exits with status 1.
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Panic logs at PanicLevel, then panics with msg.
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Tracef is Trace with a Sprintf message.
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(core.TraceLevel, format, args) }

// Debugf is Debug with a Sprintf message.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(core.DebugLevel, format, args) }

// Infof is Info with a Sprintf message.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(core.InfoLevel, format, args) }

// Warnf is Warn with a Sprintf message.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(core.WarnLevel, format, args) }

// Errorf is Error with a Sprintf message.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(core.ErrorLevel, format, args) }

// Fatalf is Fatal with a Sprintf message.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(core.FatalLevel, format, args)
	osExit(1)
}

// Panicf is Panic with a Sprintf message.
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
