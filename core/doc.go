// Package core defines the record types shared by the formatter, the
// handlers and the host adapters.
//
// An Entry is one log event: the emission instant, a Level, a Target
// label naming the emitting component, the message and optional
// structured Fields. Formatters only read entries; they never mutate
// them.
//
// Entries are pooled via sync.Pool. Callers get an Entry with GetEntry
// and return it with PutEntry once the handler has consumed it. Adapters
// for zap, logrus, zerolog and slog build an Entry from their native
// record type the same way before handing it to a formatter.
package core
