package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/tzlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer) error
}

// DefaultIndent is the continuation-line indent used when Config.Indent is 0.
const DefaultIndent = 4

// Config holds the line layout options of a TimeZoneFormatter. The zero
// value shows level and target, indents continuation lines by
// DefaultIndent and colors the level only on terminals.
type Config struct {
	// HideLevel omits the level label from the header
	HideLevel bool
	// HideTarget omits the target label from the header
	HideTarget bool
	// ModulePath adds the caller's package path after the level
	ModulePath bool
	// Indent is the number of spaces prefixed to continuation lines of a
	// multi-line message. 0 selects DefaultIndent, negative disables.
	Indent int
	// Suffix terminates each record (default "\n")
	Suffix string
	// Style controls ANSI coloring of the level label
	Style Style
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}
