package main

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/philipp01105/tzlog/formatter"
)

// precisionValue is a pflag.Value accepting the names ParsePrecision does.
type precisionValue struct {
	precision formatter.Precision
	set       bool
}

var _ pflag.Value = (*precisionValue)(nil)

func (v *precisionValue) String() string {
	if !v.set {
		return ""
	}
	return v.precision.String()
}

func (v *precisionValue) Set(s string) error {
	p, err := formatter.ParsePrecision(s)
	if err != nil {
		return err
	}
	v.precision, v.set = p, true
	return nil
}

func (v *precisionValue) Type() string { return "precision" }

// offsetValue is a pflag.Value holding a UTC offset in seconds, given as
// seconds or ±HH:MM.
type offsetValue struct {
	seconds int
	set     bool
}

var _ pflag.Value = (*offsetValue)(nil)

func (v *offsetValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.seconds)
}

func (v *offsetValue) Set(s string) error {
	seconds, err := formatter.ParseOffset(s)
	if err != nil {
		return err
	}
	v.seconds, v.set = seconds, true
	return nil
}

func (v *offsetValue) Type() string { return "offset" }
