package formatter

import (
	"errors"
	"fmt"
)

// ErrInvalidOffset is matched by errors.Is for every *OffsetError.
var ErrInvalidOffset = errors.New("invalid utc offset")

// OffsetError reports a configured offset that cannot be rendered as ±HH:MM.
type OffsetError struct {
	Seconds int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("utc offset %ds: magnitude must be below 24h", e.Seconds)
}

func (e *OffsetError) Unwrap() error { return ErrInvalidOffset }

// WriteError reports that the sink rejected a formatted record.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write log record: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }
