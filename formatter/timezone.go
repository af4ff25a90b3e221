package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Precision selects how many sub-second digits a timestamp carries.
type Precision uint8

const (
	// Seconds renders no fractional part (default)
	Seconds Precision = iota
	// Millis renders 3 fractional digits
	Millis
	// Micros renders 6 fractional digits
	Micros
	// Nanos renders 9 fractional digits
	Nanos
)

const secondsPerDay = 24 * 60 * 60

// time.Format truncates fractional seconds, it never rounds.
var timestampLayouts = [...]string{
	Seconds: "2006-01-02 15:04:05",
	Millis:  "2006-01-02 15:04:05.000",
	Micros:  "2006-01-02 15:04:05.000000",
	Nanos:   "2006-01-02 15:04:05.000000000",
}

const zoneLayout = " -07:00"

// String returns the canonical name of the precision
func (p Precision) String() string {
	switch p {
	case Seconds:
		return "seconds"
	case Millis:
		return "millis"
	case Micros:
		return "micros"
	case Nanos:
		return "nanos"
	default:
		return "precision(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePrecision converts a name such as "ms" or "micros" to a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "secs", "second", "seconds":
		return Seconds, nil
	case "ms", "milli", "millis", "milliseconds":
		return Millis, nil
	case "us", "µs", "micro", "micros", "microseconds":
		return Micros, nil
	case "ns", "nano", "nanos", "nanoseconds":
		return Nanos, nil
	default:
		return Seconds, fmt.Errorf("unknown timestamp precision %q", s)
	}
}

// ParseOffset parses a UTC offset given either as signed seconds
// ("28800", "-43200") or as "±HH:MM". "Z" and "UTC" mean zero.
// Only the syntax is checked; range errors surface at format time.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "":
		return 0, fmt.Errorf("empty utc offset")
	case "Z", "UTC":
		return 0, nil
	}
	if !strings.Contains(s, ":") {
		secs, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("parse utc offset %q: %w", s, err)
		}
		return secs, nil
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("parse utc offset %q: missing sign", s)
	}
	hh, mm, _ := strings.Cut(s[1:], ":")
	hours, err := strconv.Atoi(hh)
	if err != nil || len(hh) == 0 || hours < 0 {
		return 0, fmt.Errorf("parse utc offset %q: bad hours", s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("parse utc offset %q: bad minutes", s)
	}
	return sign * (hours*3600 + minutes*60), nil
}

// TimeZoneConfig holds the display zone and precision of rendered
// timestamps. It is immutable once built and safe to share between
// goroutines; pass it by pointer.
type TimeZoneConfig struct {
	offset    int
	hasOffset bool
	fixed     *time.Location
	location  *time.Location
	precision Precision
}

// NewTimeZoneConfig stores an optional offset in seconds east of UTC and
// an optional precision. A nil offset means the local timezone at format
// time; a nil precision means Seconds. The offset is not validated here.
func NewTimeZoneConfig(offset *int, precision *Precision) *TimeZoneConfig {
	tz := &TimeZoneConfig{}
	if offset != nil {
		tz.offset = *offset
		tz.hasOffset = true
		tz.fixed = time.FixedZone("", *offset)
	}
	if precision != nil {
		tz.precision = *precision
	}
	return tz
}

// NewTimeZoneConfigIn renders timestamps in a named location, following
// its daylight-saving rules. A nil loc behaves like DefaultTimeZoneConfig.
func NewTimeZoneConfigIn(loc *time.Location, precision *Precision) *TimeZoneConfig {
	tz := NewTimeZoneConfig(nil, precision)
	tz.location = loc
	return tz
}

// DefaultTimeZoneConfig uses the local timezone and Seconds precision.
func DefaultTimeZoneConfig() *TimeZoneConfig {
	return NewTimeZoneConfig(nil, nil)
}

// Offset returns the configured offset in seconds, if any.
func (tz *TimeZoneConfig) Offset() (int, bool) {
	return tz.offset, tz.hasOffset
}

// Location returns the configured named location, or nil.
func (tz *TimeZoneConfig) Location() *time.Location {
	return tz.location
}

// Precision returns the configured sub-second precision.
func (tz *TimeZoneConfig) Precision() Precision {
	return tz.precision
}

// String describes the configuration, e.g. "+08:00/millis" or "Local/seconds".
func (tz *TimeZoneConfig) String() string {
	switch {
	case tz.hasOffset:
		return string(appendOffset(nil, tz.offset)) + "/" + tz.precision.String()
	case tz.location != nil:
		return tz.location.String() + "/" + tz.precision.String()
	default:
		return "Local/" + tz.precision.String()
	}
}

func (tz *TimeZoneConfig) zone() (*time.Location, error) {
	switch {
	case tz.hasOffset:
		if tz.offset <= -secondsPerDay || tz.offset >= secondsPerDay {
			return nil, &OffsetError{Seconds: tz.offset}
		}
		return tz.fixed, nil
	case tz.location != nil:
		return tz.location, nil
	default:
		return time.Local, nil
	}
}

// AppendTimestamp appends t as "YYYY-MM-DD HH:MM:SS[.fraction] ±HH:MM"
// in the configured zone.
func (tz *TimeZoneConfig) AppendTimestamp(dst []byte, t time.Time) ([]byte, error) {
	loc, err := tz.zone()
	if err != nil {
		return dst, err
	}
	layout := timestampLayouts[Seconds]
	if int(tz.precision) < len(timestampLayouts) {
		layout = timestampLayouts[tz.precision]
	}
	t = t.In(loc)
	dst = t.AppendFormat(dst, layout)
	if tz.hasOffset {
		// The "-07:00" layout signs offset/60, so (-60, 0) would print "+00:00".
		return appendOffset(append(dst, ' '), tz.offset), nil
	}
	return t.AppendFormat(dst, zoneLayout), nil
}

// appendOffset appends secs as "±HH:MM", dropping leftover seconds. The
// sign always follows secs.
func appendOffset(dst []byte, secs int) []byte {
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	dst = append(dst, sign)
	dst = appendTwoDigits(dst, secs/3600)
	dst = append(dst, ':')
	return appendTwoDigits(dst, secs%3600/60)
}

func appendTwoDigits(dst []byte, n int) []byte {
	if n > 99 {
		return strconv.AppendInt(dst, int64(n), 10)
	}
	return append(dst, byte('0'+n/10), byte('0'+n%10))
}
