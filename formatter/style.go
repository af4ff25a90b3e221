package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/tzlog/core"
)

// Style controls ANSI coloring of the level label.
type Style uint8

const (
	// StyleAuto colors only when the sink is a terminal and NO_COLOR is unset
	StyleAuto Style = iota
	// StyleAlways colors regardless of the sink
	StyleAlways
	// StyleNever never colors
	StyleNever
)

// String returns the canonical name of the style
func (s Style) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleAlways:
		return "always"
	case StyleNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseStyle converts "auto", "always" or "never" to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StyleAuto, nil
	case "always", "color":
		return StyleAlways, nil
	case "never", "plain":
		return StyleNever, nil
	default:
		return StyleAuto, fmt.Errorf("unknown write style %q", s)
	}
}

var levelColors = map[core.Level][]color.Attribute{
	core.TraceLevel: {color.FgCyan},
	core.DebugLevel: {color.FgBlue},
	core.InfoLevel:  {color.FgGreen},
	core.WarnLevel:  {color.FgYellow},
	core.ErrorLevel: {color.FgRed, color.Bold},
	core.FatalLevel: {color.FgRed, color.Bold},
	core.PanicLevel: {color.FgRed, color.Bold},
}

// coloredLabels pre-renders the padded label of every level.
func coloredLabels() map[core.Level]string {
	out := make(map[core.Level]string, len(levelColors))
	for lvl, attrs := range levelColors {
		c := color.New(attrs...)
		c.EnableColor()
		out[lvl] = c.Sprint(lvl.Label())
	}
	return out
}

// isTerminal reports whether w exposes a file descriptor (as *os.File
// does) that refers to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
