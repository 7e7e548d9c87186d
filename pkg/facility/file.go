package facility

import (
	"context"
	"strings"
	"time"

	"github.com/dailylog/dailylog/pkg/log"
)

// LogExtension is the extension of plain text log files.
const LogExtension = ".log"

// FileFacility appends plain text lines to a daily log file:
//
//	[2024-03-07 14:03:59]: 🐞 ERROR: upload failed [file_id=42]
//
// It is safe for concurrent use from multiple goroutines.
type FileFacility struct {
	*dailyFiles
}

// NewFileFacility creates a FileFacility writing to folder. The folder is
// created if needed; ErrInvalidFolder is returned when that fails.
// Only WARNING and more severe events are written unless WithMinimumLevel
// says otherwise.
func NewFileFacility(folder string, opts ...Option) (*FileFacility, error) {
	d, err := newDailyFiles("file", folder, LogExtension, nil, opts)
	if err != nil {
		return nil, err
	}
	return &FileFacility{dailyFiles: d}, nil
}

// Log schedules message to be appended to today's file.
func (f *FileFacility) Log(_ string, level log.Level, message log.Message) {
	f.append(level, message.String())
}

// LogError schedules err to be appended to today's file.
func (f *FileFacility) LogError(_ string, level log.Level, err error) {
	f.append(level, log.FormatError(err))
}

func (f *FileFacility) append(level log.Level, text string) {
	f.schedule(level, func(ctx context.Context, path string, now time.Time) error {
		return f.store.Append(ctx, path, FormatFileLine(now, level, text))
	})
}

// FormatFileLine renders one line of a plain text log file.
func FormatFileLine(now time.Time, level log.Level, text string) string {
	return "[" + timestamp(now) + "]: " + strings.TrimSpace(Format(level, text)) + "\n"
}

// Compile-time interface satisfaction check.
var _ log.Facility = (*FileFacility)(nil)
