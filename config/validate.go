package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
	"github.com/philipp01105/tzlog/logger"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateLogger(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFormat() error {
	if c.Format.Offset != "" {
		offset, err := formatter.ParseOffset(c.Format.Offset)
		if err != nil {
			return fmt.Errorf("format.offset: %w", err)
		}
		if offset <= -86400 || offset >= 86400 {
			return fmt.Errorf("format.offset: %w", &formatter.OffsetError{Seconds: offset})
		}
	} else if c.Format.Timezone != "" {
		if _, err := time.LoadLocation(c.Format.Timezone); err != nil {
			return fmt.Errorf("format.timezone: %w", err)
		}
	}
	if _, err := formatter.ParsePrecision(c.Format.Precision); err != nil {
		return fmt.Errorf("format.precision: %w", err)
	}
	if _, err := formatter.ParseStyle(c.Format.Style); err != nil {
		return fmt.Errorf("format.style: %w", err)
	}
	return nil
}

func (c *Config) validateLogger() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains(Backends, c.Logger.Backend) {
		return fmt.Errorf("logger.backend must be one of %s, got %q", strings.Join(Backends, ", "), c.Logger.Backend)
	}
	return nil
}

// TimeZone builds the TimeZoneConfig described by the [format] section.
// Offset wins over timezone; neither selects the system local zone.
func (c *Config) TimeZone() (*formatter.TimeZoneConfig, error) {
	precision, err := formatter.ParsePrecision(c.Format.Precision)
	if err != nil {
		return nil, fmt.Errorf("format.precision: %w", err)
	}
	switch {
	case c.Format.Offset != "":
		offset, err := formatter.ParseOffset(c.Format.Offset)
		if err != nil {
			return nil, fmt.Errorf("format.offset: %w", err)
		}
		return formatter.NewTimeZoneConfig(&offset, &precision), nil
	case c.Format.Timezone != "":
		loc, err := time.LoadLocation(c.Format.Timezone)
		if err != nil {
			return nil, fmt.Errorf("format.timezone: %w", err)
		}
		return formatter.NewTimeZoneConfigIn(loc, &precision), nil
	default:
		return formatter.NewTimeZoneConfig(nil, &precision), nil
	}
}

// FormatterConfig returns the layout options of the [format] section.
func (c *Config) FormatterConfig() (formatter.Config, error) {
	style, err := formatter.ParseStyle(c.Format.Style)
	if err != nil {
		return formatter.Config{}, fmt.Errorf("format.style: %w", err)
	}
	return formatter.Config{
		HideLevel:  c.Format.HideLevel,
		HideTarget: c.Format.HideTarget,
		ModulePath: c.Format.ModulePath,
		Indent:     c.Format.Indent,
		Style:      style,
	}, nil
}

// Formatter builds a TimeZoneFormatter from the [format] section.
func (c *Config) Formatter() (*formatter.TimeZoneFormatter, error) {
	tz, err := c.TimeZone()
	if err != nil {
		return nil, err
	}
	cfg, err := c.FormatterConfig()
	if err != nil {
		return nil, err
	}
	return formatter.NewTimeZoneFormatter(tz, cfg), nil
}

var errUnknownLevel = errors.New("unknown level")

// Level returns the minimum level of the [logger] section.
func (c *Config) Level() (core.Level, error) {
	level, ok := logger.LookupLevel(c.Logger.Level)
	if !ok {
		return level, fmt.Errorf("logger.level: %w %q", errUnknownLevel, c.Logger.Level)
	}
	return level, nil
}
