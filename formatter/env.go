package formatter

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Environment variables read by TimeZoneConfigFromEnv.
const (
	EnvOffset    = "TZLOG_OFFSET"
	EnvTimeZone  = "TZLOG_TIMEZONE"
	EnvPrecision = "TZLOG_PRECISION"
)

// TimeZoneConfigFromEnv builds a TimeZoneConfig from TZLOG_OFFSET,
// TZLOG_TIMEZONE and TZLOG_PRECISION. Unset or empty variables keep the
// defaults. TZLOG_OFFSET wins over TZLOG_TIMEZONE.
func TimeZoneConfigFromEnv() (*TimeZoneConfig, error) {
	var precision *Precision
	if v := lookupEnv(EnvPrecision); v != "" {
		p, err := ParsePrecision(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		precision = &p
	}

	if v := lookupEnv(EnvOffset); v != "" {
		offset, err := ParseOffset(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvOffset, err)
		}
		return NewTimeZoneConfig(&offset, precision), nil
	}

	if v := lookupEnv(EnvTimeZone); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeZone, err)
		}
		return NewTimeZoneConfigIn(loc, precision), nil
	}

	return NewTimeZoneConfig(nil, precision), nil
}

func lookupEnv(key string) string {
	v, _ := os.LookupEnv(key)
	return strings.TrimSpace(v)
}
