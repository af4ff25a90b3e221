package config

import (
	"os"
	"strings"

	"github.com/philipp01105/tzlog/formatter"
	"github.com/philipp01105/tzlog/logger"
)

// Environment variables overriding file values, in addition to
// formatter.EnvOffset, formatter.EnvTimeZone, formatter.EnvPrecision
// and logger.EnvLevel.
const (
	EnvStyle   = "TZLOG_STYLE"
	EnvBackend = "TZLOG_BACKEND"
	EnvTarget  = "TZLOG_TARGET"
)

func (c *Config) normalize() {
	c.applyEnv()

	c.Format.Offset = strings.TrimSpace(c.Format.Offset)
	c.Format.Timezone = strings.TrimSpace(c.Format.Timezone)
	c.Format.Precision = strings.ToLower(strings.TrimSpace(c.Format.Precision))
	c.Format.Style = strings.ToLower(strings.TrimSpace(c.Format.Style))
	c.Logger.Level = strings.ToLower(strings.TrimSpace(c.Logger.Level))
	c.Logger.Backend = strings.ToLower(strings.TrimSpace(c.Logger.Backend))
	c.Logger.Target = strings.TrimSpace(c.Logger.Target)

	defaults := Default()
	if c.Format.Precision == "" {
		c.Format.Precision = defaults.Format.Precision
	}
	if c.Format.Style == "" {
		c.Format.Style = defaults.Format.Style
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
	if c.Logger.Backend == "" {
		c.Logger.Backend = defaults.Logger.Backend
	}
}

func (c *Config) applyEnv() {
	// An explicit offset in the environment also replaces a file timezone.
	if value, ok := lookupEnv(formatter.EnvOffset); ok {
		c.Format.Offset = value
		c.Format.Timezone = ""
	}
	if value, ok := lookupEnv(formatter.EnvTimeZone); ok {
		c.Format.Timezone = value
		if _, set := lookupEnv(formatter.EnvOffset); !set {
			c.Format.Offset = ""
		}
	}
	if value, ok := lookupEnv(formatter.EnvPrecision); ok {
		c.Format.Precision = value
	}
	if value, ok := lookupEnv(EnvStyle); ok {
		c.Format.Style = value
	}
	if value, ok := lookupEnv(logger.EnvLevel); ok {
		c.Logger.Level = value
	}
	if value, ok := lookupEnv(EnvBackend); ok {
		c.Logger.Backend = value
	}
	if value, ok := lookupEnv(EnvTarget); ok {
		c.Logger.Target = value
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}
