// Package zapfmt installs the timezone-aware line format into zap as a
// zapcore.Core.
//
// The logger name becomes the record target and zap fields are rendered
// after the message as key=value pairs:
//
//	offset := 8 * 3600
//	f := formatter.NewTimeZoneFormatter(formatter.NewTimeZoneConfig(&offset, nil), formatter.Config{})
//	log := zap.New(zapfmt.NewCore(f, zapcore.Lock(os.Stderr), zapcore.InfoLevel))
//	log.Named("mytarget").Info("1")
//	// [2024-04-25 23:53:08 +08:00 INFO  mytarget] 1
package zapfmt

import (
	"math"
	"path/filepath"
	"slices"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
)

type tzCore struct {
	zapcore.LevelEnabler

	f      *formatter.TimeZoneFormatter
	out    zapcore.WriteSyncer
	fields []core.Field
}

// NewCore creates a Core that writes records formatted by f to ws.
// A nil f uses the default timezone configuration.
func NewCore(f *formatter.TimeZoneFormatter, ws zapcore.WriteSyncer, enab zapcore.LevelEnabler) zapcore.Core {
	if f == nil {
		f = formatter.NewTimeZoneFormatter(nil, formatter.Config{})
	}
	return &tzCore{LevelEnabler: enab, f: f, out: ws}
}

func (c *tzCore) Level() zapcore.Level {
	return zapcore.LevelOf(c.LevelEnabler)
}

func (c *tzCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = appendFields(slices.Clip(c.fields), fields)
	return &clone
}

func (c *tzCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *tzCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = levelToCore(ent.Level)
	entry.Target = ent.LoggerName
	entry.Message = ent.Message
	entry.Fields = append(entry.Fields, c.fields...)
	entry.Fields = appendFields(entry.Fields, fields)
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}

	err := c.f.FormatTo(entry, c.out)
	if ent.Level >= zapcore.ErrorLevel {
		// Flush before a possible panic or exit.
		err = multierr.Append(err, c.out.Sync())
	}
	return err
}

func (c *tzCore) Sync() error {
	return c.out.Sync()
}

func levelToCore(l zapcore.Level) core.Level {
	switch {
	case l < zapcore.DebugLevel:
		return core.TraceLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	case l == zapcore.FatalLevel:
		return core.FatalLevel
	default:
		return core.PanicLevel
	}
}

// appendFields converts zap fields in order. Scalar kinds map directly;
// everything else goes through a map encoder.
func appendFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		switch f.Type {
		case zapcore.SkipType, zapcore.NamespaceType:
			continue
		case zapcore.StringType:
			dst = append(dst, core.String(f.Key, f.String))
			continue
		case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
			dst = append(dst, core.Int64(f.Key, f.Integer))
			continue
		case zapcore.BoolType:
			dst = append(dst, core.Bool(f.Key, f.Integer == 1))
			continue
		case zapcore.Float64Type:
			dst = append(dst, core.Float64(f.Key, math.Float64frombits(uint64(f.Integer))))
			continue
		case zapcore.DurationType:
			dst = append(dst, core.Field{Key: f.Key, Type: core.DurationType, Int64: f.Integer})
			continue
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok && err != nil {
				dst = append(dst, core.Field{Key: f.Key, Type: core.ErrorType, Str: err.Error()})
				continue
			}
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, core.Any(k, enc.Fields[k]))
		}
	}
	return dst
}
