package handler

import (
	"github.com/philipp01105/tzlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle formats and emits a log entry. The entry is only read and
	// may be recycled by the caller once Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their outcomes.
type StatsProvider interface {
	Stats() Snapshot
}
