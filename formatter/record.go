package formatter

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/philipp01105/tzlog/core"
)

// layout is the precomputed form of a Config.
type layout struct {
	level      bool
	target     bool
	modulePath bool
	indent     string
	indenting  bool
	suffix     string
	style      Style
	noColorEnv bool
	colored    map[core.Level]string
}

func newLayout(cfg Config) layout {
	l := layout{
		level:      !cfg.HideLevel,
		target:     !cfg.HideTarget,
		modulePath: cfg.ModulePath,
		suffix:     cfg.Suffix,
		style:      cfg.Style,
	}
	if l.suffix == "" {
		l.suffix = "\n"
	}
	switch {
	case cfg.Indent == 0:
		l.indent, l.indenting = strings.Repeat(" ", DefaultIndent), true
	case cfg.Indent > 0:
		l.indent, l.indenting = strings.Repeat(" ", cfg.Indent), true
	}
	if l.style != StyleNever {
		l.colored = coloredLabels()
	}
	_, l.noColorEnv = os.LookupEnv("NO_COLOR")
	return l
}

var defaultLayout = newLayout(Config{})

func (l *layout) colorize(out io.Writer) bool {
	switch l.style {
	case StyleAlways:
		return true
	case StyleAuto:
		return out != nil && !l.noColorEnv && isTerminal(out)
	default:
		return false
	}
}

// header writes the bracketed "[a b c] " prefix one value at a time.
type header struct {
	buf     *bytes.Buffer
	written bool
}

func (h *header) next() {
	if h.written {
		h.buf.WriteByte(' ')
		return
	}
	h.written = true
	h.buf.WriteByte('[')
}

func (h *header) finish() {
	if h.written {
		h.buf.WriteString("] ")
	}
}

func (l *layout) appendRecord(buf *bytes.Buffer, tz *TimeZoneConfig, entry *core.Entry, colorize bool) error {
	ts := entry.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	// Rendered aside so a bad offset leaves buf untouched.
	var scratch [40]byte
	stamp, err := tz.AppendTimestamp(scratch[:0], ts)
	if err != nil {
		return err
	}
	loc, _ := tz.zone()
	h := header{buf: buf}
	h.next()
	buf.Write(stamp)

	if l.level {
		h.next()
		if label, ok := l.colored[entry.Level]; ok && colorize {
			buf.WriteString(label)
		} else {
			buf.WriteString(entry.Level.Label())
		}
	}
	if l.modulePath {
		if pkg := entry.Caller.Package(); pkg != "" {
			h.next()
			buf.WriteString(pkg)
		}
	}
	if l.target && entry.Target != "" {
		h.next()
		buf.WriteString(entry.Target)
	}
	h.finish()

	l.writeMessage(buf, entry.Message)
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendValueIn(buf.AvailableBuffer(), loc))
	}
	buf.WriteString(l.suffix)
	return nil
}

func (l *layout) writeMessage(buf *bytes.Buffer, msg string) {
	if !l.indenting {
		buf.WriteString(msg)
		return
	}
	for {
		line, rest, more := strings.Cut(msg, "\n")
		buf.WriteString(line)
		if !more {
			return
		}
		buf.WriteString(l.suffix)
		buf.WriteString(l.indent)
		msg = rest
	}
}

// RecordFormatter binds a sink to a shared TimeZoneConfig for the
// duration of a format call. It observes the config and never copies or
// retains it beyond its own lifetime.
type RecordFormatter struct {
	sink   io.Writer
	tz     *TimeZoneConfig
	layout *layout
}

// NewRecordFormatter binds sink and tz using the default line layout. A
// nil tz behaves like DefaultTimeZoneConfig.
func NewRecordFormatter(sink io.Writer, tz *TimeZoneConfig) RecordFormatter {
	if tz == nil {
		tz = DefaultTimeZoneConfig()
	}
	return RecordFormatter{sink: sink, tz: tz, layout: &defaultLayout}
}

// Write formats entry as one line and writes it to the sink in a single
// call. An invalid offset returns an *OffsetError before anything is
// written; a sink failure returns a *WriteError.
func (r RecordFormatter) Write(entry *core.Entry) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := r.layout.appendRecord(buf, r.tz, entry, r.layout.colorize(r.sink)); err != nil {
		return err
	}
	if _, err := r.sink.Write(buf.Bytes()); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
