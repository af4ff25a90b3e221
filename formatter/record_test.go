package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/philipp01105/tzlog/core"
)

func intPtr(v int) *int { return &v }

func precisionPtr(p Precision) *Precision { return &p }

func newEntry(ts time.Time, msg string) *core.Entry {
	return &core.Entry{
		Time:    ts,
		Level:   core.InfoLevel,
		Target:  "mytarget",
		Message: msg,
	}
}

func formatLine(t *testing.T, tz *TimeZoneConfig, entry *core.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewRecordFormatter(&buf, tz).Write(entry); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.String()
}

func TestRecordFormatter_Scenarios(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(28800), precisionPtr(Millis))

	tests := []struct {
		name string
		ts   time.Time
		msg  string
		want string
	}{
		{
			name: "milliseconds",
			ts:   time.Date(2024, 4, 25, 15, 53, 8, 333_000_000, time.UTC),
			msg:  "1",
			want: "[2024-04-25 23:53:08.333 +08:00 INFO  mytarget] 1\n",
		},
		{
			name: "whole second",
			ts:   time.Date(2024, 4, 25, 15, 53, 8, 0, time.UTC),
			msg:  "2",
			want: "[2024-04-25 23:53:08.000 +08:00 INFO  mytarget] 2\n",
		},
		{
			name: "instant carries its own zone",
			ts:   time.Date(2024, 4, 25, 17, 53, 8, 333_000_000, time.FixedZone("CEST", 2*3600)),
			msg:  "3",
			want: "[2024-04-25 23:53:08.333 +08:00 INFO  mytarget] 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLine(t, tz, newEntry(tt.ts, tt.msg)); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordFormatter_NegativeOffsetRollover(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(-43200), nil)

	got := formatLine(t, tz, newEntry(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), "x"))
	want := "[2024-02-29 17:00:00 -12:00 INFO  mytarget] x\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestRecordFormatter_PositiveOffsetRollover(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(14*3600), nil)

	got := formatLine(t, tz, newEntry(time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC), "x"))
	want := "[2024-01-01 13:30:00 +14:00 INFO  mytarget] x\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

var lineRE = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2})(\.\d+)? ([+-])(\d{2}):(\d{2}) INFO  mytarget\] msg\n$`)

func TestRecordFormatter_LineShape(t *testing.T) {
	ts := time.Date(2024, 4, 25, 15, 53, 8, 123_456_789, time.UTC)
	digits := map[Precision]int{Seconds: 0, Millis: 3, Micros: 6, Nanos: 9}

	offsets := []int{0, 60, -60, -30, -59, 30, 19800, 19830, -34200}
	for off := -secondsPerDay + 60; off < secondsPerDay; off += 1800 {
		offsets = append(offsets, off)
	}

	for _, off := range offsets {
		for p, n := range digits {
			tz := NewTimeZoneConfig(intPtr(off), precisionPtr(p))
			line := formatLine(t, tz, newEntry(ts, "msg"))

			m := lineRE.FindStringSubmatch(line)
			if m == nil {
				t.Fatalf("offset %d %v: line %q does not match", off, p, line)
			}
			if got := max(len(m[3])-1, 0); got != n {
				t.Errorf("offset %d %v: %d fractional digits, want %d", off, p, got, n)
			}

			sign := "+"
			abs := off
			if off < 0 {
				sign, abs = "-", -off
			}
			if m[4] != sign {
				t.Errorf("offset %d: sign %q, want %q", off, m[4], sign)
			}
			if want := fmt.Sprintf("%02d:%02d", abs/3600, abs%3600/60); m[5]+":"+m[6] != want {
				t.Errorf("offset %d: rendered %s:%s, want %s", off, m[5], m[6], want)
			}

			wantLocal := ts.Add(time.Duration(off) * time.Second)
			if m[1] != wantLocal.Format("2006-01-02") || m[2] != wantLocal.Format("15:04:05") {
				t.Errorf("offset %d: local time %s %s, want %s", off, m[1], m[2], wantLocal.Format("2006-01-02 15:04:05"))
			}
		}
	}
}

func TestRecordFormatter_Idempotent(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(3600), precisionPtr(Nanos))
	entry := newEntry(time.Date(2024, 4, 25, 15, 53, 8, 1, time.UTC), "same")

	first := formatLine(t, tz, entry)
	second := formatLine(t, tz, entry)
	if first != second {
		t.Errorf("outputs differ: %q vs %q", first, second)
	}
}

func TestRecordFormatter_PrecisionMonotonic(t *testing.T) {
	ts := time.Date(2024, 4, 25, 15, 53, 8, 987_654_321, time.UTC)
	entry := newEntry(ts, "m")

	base := formatLine(t, NewTimeZoneConfig(intPtr(28800), precisionPtr(Seconds)), entry)
	// "[YYYY-MM-DD HH:MM:SS" is 20 bytes.
	head, tail := base[:20], base[20:]

	wantFrac := map[Precision]string{Millis: ".987", Micros: ".987654", Nanos: ".987654321"}
	for p, frac := range wantFrac {
		got := formatLine(t, NewTimeZoneConfig(intPtr(28800), precisionPtr(p)), entry)
		if want := head + frac + tail; got != want {
			t.Errorf("%v: got %q, want %q", p, got, want)
		}
	}
}

func TestRecordFormatter_Truncates(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 59, 59, 999_999_999, time.UTC)
	tz := NewTimeZoneConfig(intPtr(0), precisionPtr(Millis))

	got := formatLine(t, tz, newEntry(ts, "m"))
	want := "[2024-12-31 23:59:59.999 +00:00 INFO  mytarget] m\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestRecordFormatter_DefaultUsesLocal(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("TST", 5*3600+1800)
	t.Cleanup(func() { time.Local = saved })

	ts := time.Date(2024, 4, 25, 15, 53, 8, 333_000_000, time.UTC)
	got := formatLine(t, DefaultTimeZoneConfig(), newEntry(ts, "local"))
	want := "[2024-04-25 21:23:08 +05:30 INFO  mytarget] local\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestRecordFormatter_NamedLocationFollowsDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	tz := NewTimeZoneConfigIn(loc, nil)

	winter := formatLine(t, tz, newEntry(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "w"))
	summer := formatLine(t, tz, newEntry(time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), "s"))

	if !strings.HasPrefix(winter, "[2024-01-15 07:00:00 -05:00 ") {
		t.Errorf("winter line = %q", winter)
	}
	if !strings.HasPrefix(summer, "[2024-07-15 08:00:00 -04:00 ") {
		t.Errorf("summer line = %q", summer)
	}
}

func TestRecordFormatter_OffsetWinsOverLocation(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(3600), nil)
	tz.location = time.UTC

	got := formatLine(t, tz, newEntry(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "o"))
	if !strings.HasPrefix(got, "[2024-01-01 01:00:00 +01:00 ") {
		t.Errorf("Write() = %q", got)
	}
}

func TestRecordFormatter_InvalidOffset(t *testing.T) {
	for _, off := range []int{secondsPerDay, -secondsPerDay, 90000, -1 << 31} {
		t.Run(fmt.Sprint(off), func(t *testing.T) {
			var buf bytes.Buffer
			err := NewRecordFormatter(&buf, NewTimeZoneConfig(intPtr(off), nil)).Write(newEntry(time.Now(), "x"))

			if !errors.Is(err, ErrInvalidOffset) {
				t.Fatalf("Write() error = %v, want ErrInvalidOffset", err)
			}
			var oe *OffsetError
			if !errors.As(err, &oe) || oe.Seconds != off {
				t.Errorf("Write() error = %#v, want *OffsetError{%d}", err, off)
			}
			if buf.Len() != 0 {
				t.Errorf("sink received %q, want nothing", buf.String())
			}
		})
	}
}

func TestRecordFormatter_LargestValidOffsets(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for off, want := range map[int]string{
		secondsPerDay - 60:  "+23:59",
		-secondsPerDay + 60: "-23:59",
	} {
		line := formatLine(t, NewTimeZoneConfig(intPtr(off), nil), newEntry(ts, "x"))
		if !strings.Contains(line, " "+want+" ") {
			t.Errorf("offset %d: line %q missing %s", off, line, want)
		}
	}
}

func TestRecordFormatter_SubMinuteNegativeOffset(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for off, want := range map[int]string{
		-30: "[2023-12-31 23:59:30 -00:00 INFO  mytarget] x\n",
		-59: "[2023-12-31 23:59:01 -00:00 INFO  mytarget] x\n",
		59:  "[2024-01-01 00:00:59 +00:00 INFO  mytarget] x\n",
	} {
		if got := formatLine(t, NewTimeZoneConfig(intPtr(off), nil), newEntry(ts, "x")); got != want {
			t.Errorf("offset %d: Write() = %q, want %q", off, got, want)
		}
	}
}

func TestRecordFormatter_TimeFieldInDisplayZone(t *testing.T) {
	ts := time.Date(2024, 4, 25, 15, 53, 8, 0, time.UTC)
	entry := newEntry(ts, "x")
	entry.Fields = []core.Field{{Key: "at", Type: core.TimeType, Int64: ts.UnixNano()}}

	got := formatLine(t, NewTimeZoneConfig(intPtr(28800), nil), entry)
	want := "[2024-04-25 23:53:08 +08:00 INFO  mytarget] x at=2024-04-25T23:53:08+08:00\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRecordFormatter_WriteError(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	err := NewRecordFormatter(failingWriter{err: sinkErr}, nil).Write(newEntry(time.Now(), "x"))

	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Write() error = %v, want *WriteError", err)
	}
	if !errors.Is(err, sinkErr) {
		t.Errorf("Write() error does not wrap the sink error: %v", err)
	}
}

type countingWriter struct {
	calls int
	bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

func TestRecordFormatter_SingleWrite(t *testing.T) {
	f := NewTimeZoneFormatter(NewTimeZoneConfig(intPtr(0), nil), Config{})
	entry := newEntry(time.Now(), "line one\nline two")
	entry.Fields = []core.Field{core.String("k", "v"), core.Int64("n", 1)}

	var w countingWriter
	if err := f.Bind(&w).Write(entry); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if w.calls != 1 {
		t.Errorf("sink Write called %d times, want 1", w.calls)
	}
}

func TestRecordFormatter_ZeroTimeUsesNow(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)
	line := formatLine(t, NewTimeZoneConfig(intPtr(0), nil), newEntry(time.Time{}, "msg"))
	after := time.Now().UTC()

	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		t.Fatalf("line %q does not match", line)
	}
	got, err := time.Parse("2006-01-02 15:04:05", m[1]+" "+m[2])
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	if got.Before(before) || got.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", got, before, after)
	}
}

func TestRecordFormatter_ConcurrentSharedConfig(t *testing.T) {
	tz := NewTimeZoneConfig(intPtr(28800), precisionPtr(Millis))
	f := NewTimeZoneFormatter(tz, Config{})
	entry := newEntry(time.Date(2024, 4, 25, 15, 53, 8, 333_000_000, time.UTC), "1")
	want := "[2024-04-25 23:53:08.333 +08:00 INFO  mytarget] 1\n"

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				var buf bytes.Buffer
				if err := f.FormatTo(entry, &buf); err != nil || buf.String() != want {
					errs <- fmt.Sprintf("got %q, err %v", buf.String(), err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func BenchmarkRecordFormatter(b *testing.B) {
	f := NewTimeZoneFormatter(NewTimeZoneConfig(intPtr(28800), precisionPtr(Micros)), Config{})
	entry := newEntry(time.Now(), "test message")
	entry.Fields = []core.Field{core.String("key1", "value1"), core.Int64("key2", 42)}
	var buf bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = f.FormatTo(entry, &buf)
	}
}
