package logger

import (
	"time"

	"github.com/philipp01105/tzlog/core"
)

// Field constructors re-exported from core so call sites only import logger.
var (
	String  = core.String
	Int64   = core.Int64
	Float64 = core.Float64
	Bool    = core.Bool
	Any     = core.Any
)

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Time creates a time field; it renders as RFC 3339 in the zone the
// formatter displays timestamps in.
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an "error" field. A nil err renders as an empty value.
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Type: core.ErrorType}
	}
	return core.Field{Key: "error", Type: core.ErrorType, Str: err.Error()}
}
