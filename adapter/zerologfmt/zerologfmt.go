// Package zerologfmt renders zerolog's JSON events as timezone-aware text
// lines.
//
// Writer decodes each event zerolog writes and re-emits it through a
// TimeZoneFormatter, the same way zerolog.ConsoleWriter does for its own
// console format. Field names follow zerolog's package-level settings
// (TimestampFieldName, LevelFieldName, MessageFieldName, ErrorFieldName)
// and timestamps are decoded according to zerolog.TimeFieldFormat. The
// default zerolog.TimeFieldFormat (time.RFC3339) carries whole seconds
// only; set it to time.RFC3339Nano or zerolog.TimeFormatUnixNano to keep
// sub-second precision.
//
//	zerolog.TimeFieldFormat = time.RFC3339Nano
//	log := zerolog.New(zerologfmt.NewWriter(os.Stderr, f)).With().Timestamp().Logger()
//	log.Info().Str("target", "mytarget").Msg("1")
//	// [2024-04-25 23:53:08.333 +08:00 INFO  mytarget] 1
package zerologfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
)

// DefaultTargetKey is the event field rendered as the record target.
const DefaultTargetKey = "target"

var parserPool fastjson.ParserPool

// Writer parses zerolog JSON events and writes formatted lines to Out.
// Like zerolog.ConsoleWriter it does not serialize concurrent writes; wrap
// it with zerolog.SyncWriter when the logger is shared across goroutines
// and Out is not safe for concurrent use.
type Writer struct {
	// Out is the destination (default os.Stderr)
	Out io.Writer

	// Formatter renders decoded events (default TimeZoneFormatter with
	// the default timezone configuration)
	Formatter *formatter.TimeZoneFormatter

	// TargetKey selects the string field used as target (default "target")
	TargetKey string
}

var _ io.Writer = Writer{}

// NewWriter creates a Writer sending lines formatted by f to out.
func NewWriter(out io.Writer, f *formatter.TimeZoneFormatter) Writer {
	return Writer{Out: out, Formatter: f, TargetKey: DefaultTargetKey}
}

// Write decodes one zerolog event from p and writes it as a single line.
func (w Writer) Write(p []byte) (int, error) {
	parser := parserPool.Get()
	defer parserPool.Put(parser)

	v, err := parser.ParseBytes(p)
	if err != nil {
		return 0, fmt.Errorf("cannot decode event: %w", err)
	}
	obj, err := v.Object()
	if err != nil {
		return 0, fmt.Errorf("cannot decode event: %w", err)
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	if err := w.fill(entry, obj); err != nil {
		return 0, err
	}

	out := w.Out
	if out == nil {
		out = os.Stderr
	}
	f := w.Formatter
	if f == nil {
		f = defaultFormatter
	}
	if err := f.FormatTo(entry, out); err != nil {
		return 0, err
	}
	return len(p), nil
}

var defaultFormatter = formatter.NewTimeZoneFormatter(nil, formatter.Config{})

func (w Writer) fill(entry *core.Entry, obj *fastjson.Object) error {
	targetKey := w.TargetKey
	if targetKey == "" {
		targetKey = DefaultTargetKey
	}

	// Events without a timestamp keep the time GetEntry stamped.
	entry.Level = core.InfoLevel

	var err error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if err != nil {
			return
		}
		switch k := string(key); k {
		case zerolog.TimestampFieldName:
			entry.Time, err = decodeTime(v)
		case zerolog.LevelFieldName:
			entry.Level = decodeLevel(v)
		case zerolog.MessageFieldName:
			entry.Message = string(v.GetStringBytes())
		case targetKey:
			if v.Type() == fastjson.TypeString {
				entry.Target = string(v.GetStringBytes())
				return
			}
			entry.Fields = appendValue(entry.Fields, k, v)
		case zerolog.ErrorFieldName:
			if v.Type() == fastjson.TypeString {
				entry.Fields = append(entry.Fields, core.Field{Key: k, Type: core.ErrorType, Str: string(v.GetStringBytes())})
				return
			}
			entry.Fields = appendValue(entry.Fields, k, v)
		default:
			entry.Fields = appendValue(entry.Fields, k, v)
		}
	})
	return err
}

func appendValue(dst []core.Field, key string, v *fastjson.Value) []core.Field {
	switch v.Type() {
	case fastjson.TypeString:
		return append(dst, core.String(key, string(v.GetStringBytes())))
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return append(dst, core.Int64(key, n))
		}
		return append(dst, core.Float64(key, v.GetFloat64()))
	case fastjson.TypeTrue:
		return append(dst, core.Bool(key, true))
	case fastjson.TypeFalse:
		return append(dst, core.Bool(key, false))
	default:
		// null, objects and arrays keep their JSON text
		return append(dst, core.String(key, string(v.MarshalTo(nil))))
	}
}

var errTimestamp = errors.New("unsupported timestamp value")

func decodeTime(v *fastjson.Value) (time.Time, error) {
	switch v.Type() {
	case fastjson.TypeString:
		layout := zerolog.TimeFieldFormat
		if isUnixFormat(layout) {
			layout = time.RFC3339Nano
		}
		t, err := time.Parse(layout, string(v.GetStringBytes()))
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot decode %s: %w", zerolog.TimestampFieldName, err)
		}
		return t, nil
	case fastjson.TypeNumber:
		n, err := v.Int64()
		if err != nil {
			f := v.GetFloat64()
			sec := int64(f)
			return time.Unix(sec, int64((f-float64(sec))*1e9)), nil
		}
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(n), nil
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(n), nil
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, n), nil
		default:
			return time.Unix(n, 0), nil
		}
	default:
		return time.Time{}, fmt.Errorf("cannot decode %s: %w", zerolog.TimestampFieldName, errTimestamp)
	}
}

func isUnixFormat(layout string) bool {
	switch layout {
	case zerolog.TimeFormatUnix, zerolog.TimeFormatUnixMs, zerolog.TimeFormatUnixMicro, zerolog.TimeFormatUnixNano:
		return true
	}
	return false
}

func decodeLevel(v *fastjson.Value) core.Level {
	var s string
	switch v.Type() {
	case fastjson.TypeString:
		s = string(v.GetStringBytes())
	case fastjson.TypeNumber:
		s = strconv.Itoa(v.GetInt())
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return core.InfoLevel
	}
	switch l {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel:
		return core.FatalLevel
	case zerolog.PanicLevel:
		return core.PanicLevel
	default:
		return core.InfoLevel
	}
}
