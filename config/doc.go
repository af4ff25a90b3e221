// Package config loads tzlog settings from a TOML file.
//
// Values are resolved in three layers: built-in defaults from Default, the
// TOML file (when present), then TZLOG_* environment variables. The result
// is validated before Load returns it, so TimeZone, FormatterConfig and
// Level only fail on a Config that was modified after loading.
//
// Default file locations:
//
//	~/.config/tzlog/config.toml
//	./tzlog.toml
//
// A commented sample is embedded in the binary and written by CreateSample.
package config
