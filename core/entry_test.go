package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{PanicLevel, "PANIC"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Label(t *testing.T) {
	for l := TraceLevel; l <= PanicLevel; l++ {
		got := l.Label()
		if len(got) != LabelWidth {
			t.Errorf("%v.Label() = %q, want width %d", l, got, LabelWidth)
		}
	}
	if got := InfoLevel.Label(); got != "INFO " {
		t.Errorf("InfoLevel.Label() = %q, want %q", got, "INFO ")
	}
	if got := Level(42).Label(); got != "UNKNOWN" {
		t.Errorf("Level(42).Label() = %q, want %q", got, "UNKNOWN")
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}
	if e1.Time.IsZero() {
		t.Error("GetEntry() returned an entry without a timestamp")
	}
	if len(e1.Fields) != 0 {
		t.Errorf("Expected empty fields, got %d", len(e1.Fields))
	}

	e1.Message = "test"
	e1.Target = "svc"
	e1.Fields = append(e1.Fields, String("test", "value"))
	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if e2.Target != "" {
		t.Errorf("Expected empty target after pool reset, got %q", e2.Target)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("Expected empty fields after pool reset, got %d", len(e2.Fields))
	}
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}
	if caller.ShortFile != "entry_test.go" {
		t.Errorf("ShortFile = %q, want entry_test.go", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if got, want := caller.Package(), "github.com/philipp01105/tzlog/core"; got != want {
		t.Errorf("Package() = %q, want %q", got, want)
	}
}

func TestCallerInfo_Package(t *testing.T) {
	tests := []struct {
		name string
		info CallerInfo
		want string
	}{
		{"undefined", CallerInfo{Function: "main.main"}, ""},
		{"main", CallerInfo{Function: "main.main", Defined: true}, "main"},
		{"method", CallerInfo{Function: "example.com/a/b.(*T).Run", Defined: true}, "example.com/a/b"},
		{"closure", CallerInfo{Function: "example.com/pkg.run.func1", Defined: true}, "example.com/pkg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Package(); got != tt.want {
				t.Errorf("Package() = %q, want %q", got, tt.want)
			}
		})
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
