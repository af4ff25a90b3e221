package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tzlog/adapter/logrusfmt"
	"github.com/philipp01105/tzlog/adapter/zapfmt"
	"github.com/philipp01105/tzlog/adapter/zerologfmt"
	"github.com/philipp01105/tzlog/config"
	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
	"github.com/philipp01105/tzlog/handler"
	"github.com/philipp01105/tzlog/handler/consolehandler"
	"github.com/philipp01105/tzlog/logger"
)

// emitter sends records through one logging library.
type emitter interface {
	Emit(level core.Level, msg string, fields ...core.Field)
	Close() error
}

// sink records the first write error so every backend can report it,
// including those that only print write failures.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil && s.err == nil {
		s.err = err
	}
	return n, err
}

// Fd exposes the descriptor of a wrapped file so terminal styling still
// applies through the sink.
func (s *sink) Fd() uintptr {
	if f, ok := s.w.(interface{ Fd() uintptr }); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

func newEmitter(backend string, f *formatter.TimeZoneFormatter, out *sink, level core.Level, target string) (emitter, error) {
	switch backend {
	case config.BackendTzlog:
		return newTzlogEmitter(f, out, level, target), nil
	case config.BackendSlog:
		return newSlogEmitter(f, out, level, target), nil
	case config.BackendZap:
		return newZapEmitter(f, out, level, target), nil
	case config.BackendLogrus:
		return newLogrusEmitter(f, out, level, target), nil
	case config.BackendZerolog:
		return newZerologEmitter(f, out, level, target), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

type tzlogEmitter struct {
	console *consolehandler.ConsoleHandler
}

func newTzlogEmitter(f *formatter.TimeZoneFormatter, out io.Writer, level core.Level, target string) *tzlogEmitter {
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: out, Formatter: f})
	logger.SetDefault(logger.NewBuilder().
		WithHandler(console).
		WithLevel(level).
		WithTarget(target).
		Build())
	return &tzlogEmitter{console: console}
}

func (e *tzlogEmitter) Emit(level core.Level, msg string, fields ...core.Field) {
	logger.Default().Log(level, msg, fields...)
}

func (e *tzlogEmitter) Close() error {
	return closeConsole(e.console)
}

type slogEmitter struct {
	console *consolehandler.ConsoleHandler
	log     *slog.Logger
}

func newSlogEmitter(f *formatter.TimeZoneFormatter, out io.Writer, level core.Level, target string) *slogEmitter {
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: out, Formatter: f})
	log := slog.New(handler.NewSlogHandler(console, level))
	if target != "" {
		log = log.With(slog.String(handler.TargetKey, target))
	}
	return &slogEmitter{console: console, log: log}
}

func (e *slogEmitter) Emit(level core.Level, msg string, fields ...core.Field) {
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.String(f.Key, f.StringValue()))
	}
	e.log.LogAttrs(context.Background(), slogLevel(level), msg, attrs...)
}

func (e *slogEmitter) Close() error {
	return closeConsole(e.console)
}

type countingHandler interface {
	handler.Handler
	handler.StatsProvider
}

func closeConsole(h countingHandler) error {
	stats := h.Stats()
	if err := h.Close(); err != nil {
		return err
	}
	if failed := stats.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d records failed", failed, failed+stats.ProcessedTotal)
	}
	return nil
}

func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return slog.LevelDebug - 4
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

type zapEmitter struct {
	log *zap.Logger
}

// writerOnly hides any Sync method of the wrapped writer; stdout pipes
// and terminals fail fsync.
type writerOnly struct{ io.Writer }

func newZapEmitter(f *formatter.TimeZoneFormatter, out io.Writer, level core.Level, target string) *zapEmitter {
	c := zapfmt.NewCore(f, zapcore.AddSync(writerOnly{out}), zapLevel(level))
	return &zapEmitter{log: zap.New(c).Named(target)}
}

func (e *zapEmitter) Emit(level core.Level, msg string, fields ...core.Field) {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, zap.String(f.Key, f.StringValue()))
	}
	e.log.Log(zapLevel(level), msg, zf...)
}

func (e *zapEmitter) Close() error {
	return e.log.Sync()
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel:
		return zapcore.DebugLevel - 1
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

type logrusEmitter struct {
	entry *logrus.Entry
}

func newLogrusEmitter(f *formatter.TimeZoneFormatter, out io.Writer, level core.Level, target string) *logrusEmitter {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrusLevel(level))
	log.SetFormatter(logrusfmt.Wrap(f))

	entry := logrus.NewEntry(log)
	if target != "" {
		entry = entry.WithField(logrusfmt.DefaultTargetKey, target)
	}
	return &logrusEmitter{entry: entry}
}

func (e *logrusEmitter) Emit(level core.Level, msg string, fields ...core.Field) {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.StringValue()
	}
	e.entry.WithFields(data).Log(logrusLevel(level), msg)
}

func (e *logrusEmitter) Close() error { return nil }

func logrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

type zerologEmitter struct {
	log zerolog.Logger
}

func newZerologEmitter(f *formatter.TimeZoneFormatter, out io.Writer, level core.Level, target string) *zerologEmitter {
	// Keep sub-second digits through the JSON round trip.
	zerolog.TimeFieldFormat = time.RFC3339Nano

	ctx := zerolog.New(zerologfmt.NewWriter(out, f)).Level(zerologLevel(level)).With().Timestamp()
	if target != "" {
		ctx = ctx.Str(zerologfmt.DefaultTargetKey, target)
	}
	return &zerologEmitter{log: ctx.Logger()}
}

func (e *zerologEmitter) Emit(level core.Level, msg string, fields ...core.Field) {
	ev := e.log.WithLevel(zerologLevel(level))
	for _, f := range fields {
		ev = ev.Str(f.Key, f.StringValue())
	}
	ev.Msg(msg)
}

func (e *zerologEmitter) Close() error { return nil }

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
