// Package handler provides the Handler interface that loggers dispatch
// entries to, the outcome counters handlers keep, and SlogHandler, which
// lets log/slog emit through any Handler.
//
// Handlers run on the caller's goroutine. A handler serializes writes to
// its sink so that lines appear in the order Handle was called; the
// formatter it wraps does no locking of its own.
//
// A failed Handle call is never retried. Handlers count it in Stats by
// cause (an unrenderable timezone offset or a rejected write) and return
// the error so the logger can decide whether to report or drop it.
//
// Built-in handlers:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stderr).
//   - SlogHandler adapts a Handler to log/slog.Handler.
package handler
