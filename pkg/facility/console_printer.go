package facility

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dailylog/dailylog/pkg/log"
)

// Level label styles used by ConsolePrinter.
var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	crashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// LevelStyle returns the style used to highlight level.
func LevelStyle(level log.Level) lipgloss.Style {
	switch level {
	case log.LevelWarning:
		return warningStyle
	case log.LevelError:
		return errorStyle
	case log.LevelCrash:
		return crashStyle
	default:
		return infoStyle
	}
}

// ConsolePrinter writes "[source] line" to an io.Writer, one line per call.
type ConsolePrinter struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewConsolePrinter creates a ConsolePrinter writing plain text to w.
func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

// NewColorConsolePrinter creates a ConsolePrinter that highlights the
// source and level label.
func NewColorConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w, color: true}
}

// Print writes line prefixed by source.
func (c *ConsolePrinter) Print(source string, level log.Level, line string) {
	prefix := "[" + source + "]"
	if c.color {
		prefix = sourceStyle.Render(prefix)
		label := level.String()
		line = strings.Replace(line, label, LevelStyle(level).Render(label), 1)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Console output is best effort.
	_, _ = fmt.Fprintf(c.w, "%s %s\n", prefix, line)
}

// Compile-time interface satisfaction check.
var _ Printer = (*ConsolePrinter)(nil)
