package consolehandler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/formatter"
	"github.com/philipp01105/tzlog/handler"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("console handler closed")

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TimeZoneFormatter with the local timezone)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTimeZoneFormatter(formatter.DefaultTimeZoneConfig(), formatter.Config{})
	}
}

// ConsoleHandler writes each entry to its writer synchronously. Writes
// are serialized by a single mutex, so lines appear in Handle order.
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	syncBuf         bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	// WriterFormatter goes first: it sees the real sink, which terminal
	// styling depends on.
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	if h.writerFormatter == nil {
		h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
		h.syncBuf.Grow(256)
	}
	return h
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	err := h.write(entry)
	h.stats.Record(err)
	return err
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	switch {
	case h.writerFormatter != nil:
		return h.writerFormatter.FormatTo(entry, h.writer)
	case h.bufferFormatter != nil:
		h.syncBuf.Reset()
		if err := h.bufferFormatter.FormatEntry(entry, &h.syncBuf); err != nil {
			return err
		}
		return writeAll(h.writer, h.syncBuf.Bytes())
	default:
		data, err := h.formatter.Format(entry)
		if err != nil {
			return err
		}
		return writeAll(h.writer, data)
	}
}

func writeAll(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return &formatter.WriteError{Err: err}
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The writer is not closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
