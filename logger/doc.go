// Package logger is the host side of tzlog: a small synchronous logger
// whose records are rendered by a formatter.TimeZoneFormatter.
//
// A Logger is immutable after construction. The level, target, default
// fields and handler are set once via the Builder, and With and Named
// return copies, so a Logger is safe for concurrent use without locking
// on the read path.
//
// The package initializes a default Logger (InfoLevel, stderr, local
// timezone, seconds precision) in init(). SetDefault is the registration
// hook that replaces it, and Init and InitFromEnv build and register one
// in a single call:
//
//	offset := 8 * 3600
//	logger.Init(logger.InfoLevel, formatter.NewTimeZoneConfig(&offset, nil))
//	logger.Named("mytarget").Info("ready")
//	// [2024-04-25 23:53:08 +08:00 INFO  mytarget] ready
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithTarget("api").
//	    WithErrorHandler(report).
//	    Build()
//
// Level checks happen before any allocation. A record the handler fails
// to write is passed to the error handler, if any, and otherwise dropped;
// it is never retried.
package logger
