// Package formatter renders log entries as single text lines whose
// timestamp is shown in a configurable timezone and precision:
//
//	[2024-04-25 23:53:08.333 +08:00 INFO  mytarget] message
//
// A TimeZoneConfig carries the display offset (or none, meaning the
// process's local zone at format time) and the number of sub-second
// digits. It is immutable and meant to be built once and shared by
// pointer between every goroutine that formats.
//
// TimeZoneFormatter is the object a host installs. It implements the
// Formatter, WriterFormatter and BufferFormatter interfaces used by the
// handlers in this module and is also what the zap, logrus and zerolog
// adapters wrap. For each call it binds a RecordFormatter to the sink,
// assembles the line in a pooled bytes.Buffer and writes it with a
// single Write call.
//
// Offsets whose magnitude reaches 24 hours are rejected when a record is
// formatted: the call returns an *OffsetError and nothing is written.
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
