// Command tzlog prints sample log lines in the timezone-aware format and
// manages the tzlog configuration file.
//
// Usage:
//
//	tzlog emit [--backend tzlog|slog|zap|logrus|zerolog] [--level info]
//	           [--target name] [--offset +08:00] [--precision millis]
//	           [--count n] [message...]
//	tzlog config init [--path file] [--overwrite]
//	tzlog config show
//	tzlog config validate
//
// The persistent --config flag selects the TOML file; TZLOG_* environment
// variables override it and command flags override both.
package main
