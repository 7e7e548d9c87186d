package facility

import (
	"context"
	"log/slog"

	"github.com/dailylog/dailylog/pkg/log"
)

// SlogLevelCrash is the slog level crash events are printed at.
const SlogLevelCrash = slog.LevelError + 4

// SlogPrinter writes log lines to an slog.Logger.
// Useful when the host application already routes its output through slog.
type SlogPrinter struct {
	logger *slog.Logger
}

// NewSlogPrinter creates a new SlogPrinter that writes to the given slog.Logger.
func NewSlogPrinter(logger *slog.Logger) *SlogPrinter {
	return &SlogPrinter{logger: logger}
}

// Print writes line with the source as attribute. INFO, WARNING and ERROR
// map to the slog levels of the same name; CRASH maps to SlogLevelCrash.
func (p *SlogPrinter) Print(source string, level log.Level, line string) {
	p.logger.LogAttrs(context.Background(), SlogLevel(level), line,
		slog.String("source", source),
		slog.String("level_label", level.Label()),
	)
}

// SlogLevel maps a log level to its slog equivalent.
func SlogLevel(level log.Level) slog.Level {
	switch level {
	case log.LevelWarning:
		return slog.LevelWarn
	case log.LevelError:
		return slog.LevelError
	case log.LevelCrash:
		return SlogLevelCrash
	default:
		return slog.LevelInfo
	}
}

// Compile-time interface satisfaction check.
var _ Printer = (*SlogPrinter)(nil)
