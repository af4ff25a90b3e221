// Package logrusfmt installs the timezone-aware line format into logrus.
//
//	offset := 8 * 3600
//	log := logrus.New()
//	log.SetFormatter(logrusfmt.New(formatter.NewTimeZoneConfig(&offset, nil), formatter.Config{}))
//	log.WithField("target", "mytarget").Info("1")
//	// [2024-04-25 23:53:08 +08:00 INFO  mytarget] 1
package logrusfmt

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
)

// DefaultTargetKey is the entry data key rendered as the record target.
const DefaultTargetKey = "target"

// Formatter implements logrus.Formatter.
type Formatter struct {
	// TargetKey selects the data key used as target (default "target")
	TargetKey string

	tz *formatter.TimeZoneFormatter
}

var _ logrus.Formatter = (*Formatter)(nil)

// New creates a logrus formatter sharing tz.
func New(tz *formatter.TimeZoneConfig, cfg formatter.Config) *Formatter {
	return Wrap(formatter.NewTimeZoneFormatter(tz, cfg))
}

// Wrap adapts an existing TimeZoneFormatter.
func Wrap(f *formatter.TimeZoneFormatter) *Formatter {
	return &Formatter{TargetKey: DefaultTargetKey, tz: f}
}

// Format renders a single log entry
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	f.fill(entry, e)

	var out io.Writer
	if e.Logger != nil {
		out = e.Logger.Out
	}
	if err := f.tz.AppendRecord(b, entry, out); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (f *Formatter) fill(entry *core.Entry, e *logrus.Entry) {
	entry.Time = e.Time
	entry.Level = levelToCore(e.Level)
	entry.Message = e.Message

	key := f.TargetKey
	if key == "" {
		key = DefaultTargetKey
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k == key {
			if s, ok := e.Data[k].(string); ok {
				entry.Target = s
				continue
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := e.Data[k].(type) {
		case string:
			entry.Fields = append(entry.Fields, core.String(k, v))
		case error:
			entry.Fields = append(entry.Fields, core.Field{Key: k, Type: core.ErrorType, Str: v.Error()})
		default:
			entry.Fields = append(entry.Fields, core.Any(k, v))
		}
	}

	if e.HasCaller() {
		entry.Caller = core.CallerInfo{
			File:      e.Caller.File,
			ShortFile: filepath.Base(e.Caller.File),
			Line:      e.Caller.Line,
			Function:  e.Caller.Function,
			Defined:   true,
		}
	}
}

func levelToCore(l logrus.Level) core.Level {
	switch l {
	case logrus.TraceLevel:
		return core.TraceLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.FatalLevel:
		return core.FatalLevel
	default:
		return core.PanicLevel
	}
}
