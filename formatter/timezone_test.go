package formatter

import (
	"strings"
	"testing"
	"time"
)

func TestNewTimeZoneConfig(t *testing.T) {
	tz := NewTimeZoneConfig(nil, nil)
	if _, ok := tz.Offset(); ok {
		t.Error("Offset() reported a value for an absent offset")
	}
	if tz.Precision() != Seconds {
		t.Errorf("Precision() = %v, want %v", tz.Precision(), Seconds)
	}

	tz = NewTimeZoneConfig(intPtr(-3600), precisionPtr(Nanos))
	if off, ok := tz.Offset(); !ok || off != -3600 {
		t.Errorf("Offset() = %d, %v, want -3600, true", off, ok)
	}
	if tz.Precision() != Nanos {
		t.Errorf("Precision() = %v, want %v", tz.Precision(), Nanos)
	}

	// Construction never validates.
	tz = NewTimeZoneConfig(intPtr(1_000_000), nil)
	if off, _ := tz.Offset(); off != 1_000_000 {
		t.Errorf("Offset() = %d, want 1000000", off)
	}
}

func TestDefaultTimeZoneConfig(t *testing.T) {
	tz := DefaultTimeZoneConfig()
	if _, ok := tz.Offset(); ok {
		t.Error("default config has an offset")
	}
	if tz.Location() != nil {
		t.Error("default config has a location")
	}
	if tz.Precision() != Seconds {
		t.Errorf("Precision() = %v, want seconds", tz.Precision())
	}
}

func TestTimeZoneConfig_String(t *testing.T) {
	tests := []struct {
		tz   *TimeZoneConfig
		want string
	}{
		{NewTimeZoneConfig(intPtr(28800), precisionPtr(Millis)), "+08:00/millis"},
		{NewTimeZoneConfig(intPtr(-34200), nil), "-09:30/seconds"},
		{NewTimeZoneConfig(intPtr(-30), nil), "-00:00/seconds"},
		{NewTimeZoneConfigIn(time.UTC, precisionPtr(Micros)), "UTC/micros"},
		{DefaultTimeZoneConfig(), "Local/seconds"},
	}
	for _, tt := range tests {
		if got := tt.tz.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in   string
		want Precision
	}{
		{"s", Seconds},
		{"Seconds", Seconds},
		{"ms", Millis},
		{" millis ", Millis},
		{"us", Micros},
		{"MICROS", Micros},
		{"ns", Nanos},
		{"nanoseconds", Nanos},
	}
	for _, tt := range tests {
		got, err := ParsePrecision(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParsePrecision(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParsePrecision("minutes"); err == nil {
		t.Error("ParsePrecision(minutes) returned no error")
	}
}

func TestPrecision_String(t *testing.T) {
	for p, want := range map[Precision]string{Seconds: "seconds", Millis: "millis", Micros: "micros", Nanos: "nanos", Precision(9): "precision(9)"} {
		if got := p.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "28800", want: 28800},
		{in: "-43200", want: -43200},
		{in: "0", want: 0},
		{in: "Z", want: 0},
		{in: "utc", want: 0},
		{in: "+08:00", want: 28800},
		{in: "-09:30", want: -34200},
		{in: "+5:45", want: 20700},
		{in: "+25:00", want: 90000},
		{in: "", wantErr: true},
		{in: "08:00", wantErr: true},
		{in: "+08:60", wantErr: true},
		{in: "+08:5", wantErr: true},
		{in: "+:30", wantErr: true},
		{in: "eight", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOffset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOffset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOffset(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{"": StyleAuto, "auto": StyleAuto, "Always": StyleAlways, "never": StyleNever} {
		got, err := ParseStyle(in)
		if err != nil || got != want {
			t.Errorf("ParseStyle(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseStyle("rainbow"); err == nil {
		t.Error("ParseStyle(rainbow) returned no error")
	}
}

func TestTimeZoneConfigFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvOffset, "")
		t.Setenv(EnvTimeZone, "")
		t.Setenv(EnvPrecision, "")
		tz, err := TimeZoneConfigFromEnv()
		if err != nil {
			t.Fatalf("TimeZoneConfigFromEnv() error = %v", err)
		}
		if got := tz.String(); got != "Local/seconds" {
			t.Errorf("config = %s, want Local/seconds", got)
		}
	})

	t.Run("offset and precision", func(t *testing.T) {
		t.Setenv(EnvOffset, "+08:00")
		t.Setenv(EnvTimeZone, "America/New_York")
		t.Setenv(EnvPrecision, "ms")
		tz, err := TimeZoneConfigFromEnv()
		if err != nil {
			t.Fatalf("TimeZoneConfigFromEnv() error = %v", err)
		}
		if got := tz.String(); got != "+08:00/millis" {
			t.Errorf("config = %s, want +08:00/millis", got)
		}
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv(EnvOffset, "")
		t.Setenv(EnvTimeZone, "Asia/Tokyo")
		t.Setenv(EnvPrecision, "")
		tz, err := TimeZoneConfigFromEnv()
		if err != nil {
			t.Fatalf("TimeZoneConfigFromEnv() error = %v", err)
		}
		if got := tz.String(); got != "Asia/Tokyo/seconds" {
			t.Errorf("config = %s, want Asia/Tokyo/seconds", got)
		}
	})

	for name, env := range map[string][2]string{
		"bad offset":    {EnvOffset, "soon"},
		"bad zone":      {EnvTimeZone, "Mars/Olympus_Mons"},
		"bad precision": {EnvPrecision, "fortnight"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(EnvOffset, "")
			t.Setenv(EnvTimeZone, "")
			t.Setenv(EnvPrecision, "")
			t.Setenv(env[0], env[1])
			_, err := TimeZoneConfigFromEnv()
			if err == nil {
				t.Fatalf("TimeZoneConfigFromEnv() with %s=%s returned no error", env[0], env[1])
			}
			if !strings.Contains(err.Error(), env[0]) {
				t.Errorf("error %q does not name %s", err, env[0])
			}
		})
	}
}
