package formatter_test

import (
	"os"
	"time"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
)

func ExampleNewRecordFormatter() {
	offset := 8 * 60 * 60
	precision := formatter.Millis
	tz := formatter.NewTimeZoneConfig(&offset, &precision)

	entry := &core.Entry{
		Time:    time.Date(2024, 4, 25, 15, 53, 8, 333_000_000, time.UTC),
		Level:   core.InfoLevel,
		Target:  "mytarget",
		Message: "1",
	}

	_ = formatter.NewRecordFormatter(os.Stdout, tz).Write(entry)
	// Output:
	// [2024-04-25 23:53:08.333 +08:00 INFO  mytarget] 1
}

func ExampleNewTimeZoneFormatter() {
	offset := -12 * 60 * 60
	f := formatter.NewTimeZoneFormatter(
		formatter.NewTimeZoneConfig(&offset, nil),
		formatter.Config{Style: formatter.StyleNever},
	)

	entry := &core.Entry{
		Time:    time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Target:  "billing",
		Message: "retrying\nattempt 2",
		Fields:  []core.Field{core.Int64("invoice", 7)},
	}

	_ = f.FormatTo(entry, os.Stdout)
	// Output:
	// [2024-02-29 17:00:00 -12:00 WARN  billing] retrying
	//     attempt 2 invoice=7
}
