package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/tzlog/core"
)

// TimeZoneFormatter formats entries with timezone-aware timestamps. It is
// the object installed into a handler or host adapter and is safe for
// concurrent use.
type TimeZoneFormatter struct {
	tz     *TimeZoneConfig
	layout layout
}

// NewTimeZoneFormatter creates a formatter that shares tz with every
// record it formats. A nil tz selects DefaultTimeZoneConfig.
func NewTimeZoneFormatter(tz *TimeZoneConfig, cfg Config) *TimeZoneFormatter {
	if tz == nil {
		tz = DefaultTimeZoneConfig()
	}
	return &TimeZoneFormatter{tz: tz, layout: newLayout(cfg)}
}

// TimeZone returns the shared configuration.
func (f *TimeZoneFormatter) TimeZone() *TimeZoneConfig {
	return f.tz
}

// Bind returns a RecordFormatter writing to sink with this formatter's layout.
func (f *TimeZoneFormatter) Bind(sink io.Writer) RecordFormatter {
	return RecordFormatter{sink: sink, tz: f.tz, layout: &f.layout}
}

// Format formats an entry as text
func (f *TimeZoneFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.AppendRecord(buf, entry, nil); err != nil {
		return nil, err
	}
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TimeZoneFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return f.Bind(w).Write(entry)
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *TimeZoneFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) error {
	return f.AppendRecord(buf, entry, nil)
}

// AppendRecord appends the formatted entry to buf, styled as it would be
// when written to out. out is only inspected, never written; pass nil
// when the destination is unknown.
func (f *TimeZoneFormatter) AppendRecord(buf *bytes.Buffer, entry *core.Entry, out io.Writer) error {
	return f.layout.appendRecord(buf, f.tz, entry, f.layout.colorize(out))
}
