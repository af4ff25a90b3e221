package handler

import (
	"errors"
	"sync/atomic"

	"github.com/philipp01105/tzlog/formatter"
)

// Stats tracks handler outcomes
type Stats struct {
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// OffsetErrors counts entries rejected because of an invalid offset
	OffsetErrors uint64
	// WriteErrors counts entries the sink refused
	WriteErrors uint64
	// OtherErrors counts any remaining failures
	OtherErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Record counts the outcome of one Handle call; a nil err counts as processed.
func (s *Stats) Record(err error) {
	var we *formatter.WriteError
	switch {
	case err == nil:
		atomic.AddUint64(&s.ProcessedTotal, 1)
	case errors.Is(err, formatter.ErrInvalidOffset):
		atomic.AddUint64(&s.OffsetErrors, 1)
	case errors.As(err, &we):
		atomic.AddUint64(&s.WriteErrors, 1)
	default:
		atomic.AddUint64(&s.OtherErrors, 1)
	}
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the number of entries that were not written
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.OffsetErrors) +
		atomic.LoadUint64(&s.WriteErrors) +
		atomic.LoadUint64(&s.OtherErrors)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.OffsetErrors, 0)
	atomic.StoreUint64(&s.WriteErrors, 0)
	atomic.StoreUint64(&s.OtherErrors, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	OffsetErrors   uint64
	WriteErrors    uint64
	OtherErrors    uint64
}

// Failed returns the number of entries that were not written.
func (s Snapshot) Failed() uint64 {
	return s.OffsetErrors + s.WriteErrors + s.OtherErrors
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.GetProcessed(),
		OffsetErrors:   atomic.LoadUint64(&s.OffsetErrors),
		WriteErrors:    atomic.LoadUint64(&s.WriteErrors),
		OtherErrors:    atomic.LoadUint64(&s.OtherErrors),
	}
}
