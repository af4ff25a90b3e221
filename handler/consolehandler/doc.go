// Package consolehandler provides a synchronous handler that writes
// formatted log entries to any io.Writer (default: os.Stderr).
//
// The handler formats on the calling goroutine and holds one mutex
// across format and write, which is what keeps concurrently logged lines
// whole and in call order. Formatters that implement
// formatter.WriterFormatter are handed the writer directly so they can
// detect a terminal; otherwise the handler formats into its own buffer
// and issues a single Write.
package consolehandler
