package facility

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dailylog/dailylog/pkg/log"
)

// JSONExtension is the extension of JSON log files.
const JSONExtension = ".json"

// emptyArray seeds every new JSON log file.
const emptyArray = "[]"

// JSONFacility writes events as objects of a JSON array, one daily file at
// a time. The file is a valid JSON document after every write.
//
// Each event is written by overwriting the closing bracket:
//
//	[]                       seed
//	[{...}]                  first event
//	[{...},{...}]            second event
//
// It is safe for concurrent use from multiple goroutines.
type JSONFacility struct {
	*dailyFiles

	// writeMu makes the size check and the write of an event atomic.
	writeMu sync.Mutex
}

// NewJSONFacility creates a JSONFacility writing to folder. The folder is
// created if needed; ErrInvalidFolder is returned when that fails.
// Only WARNING and more severe events are written unless WithMinimumLevel
// says otherwise.
func NewJSONFacility(folder string, opts ...Option) (*JSONFacility, error) {
	f := &JSONFacility{}
	d, err := newDailyFiles("json", folder, JSONExtension, f.openFunc, opts)
	if err != nil {
		return nil, err
	}
	f.dailyFiles = d
	return f, nil
}

// openFunc seeds a new file with an empty array. A file left behind by an
// earlier run of the process already holds events and is kept as is.
func (f *JSONFacility) openFunc(d *dailyFiles) OpenFunc {
	return func(ctx context.Context, path string) error {
		if err := d.store.Ensure(ctx, path); err != nil {
			return err
		}
		size, err := d.store.Size(ctx, path)
		if err != nil {
			return err
		}
		if size > 0 {
			return nil
		}
		return d.store.Write(ctx, path, 0, emptyArray)
	}
}

// Log schedules message to be added to today's file.
func (f *JSONFacility) Log(source string, level log.Level, message log.Message) {
	f.schedule(level, func(ctx context.Context, path string, now time.Time) error {
		return f.writeObject(ctx, path, EncodeJSONRecord(source, now, level, &message, nil))
	})
}

// LogError schedules err to be added to today's file.
func (f *JSONFacility) LogError(source string, level log.Level, err error) {
	f.schedule(level, func(ctx context.Context, path string, now time.Time) error {
		return f.writeObject(ctx, path, EncodeJSONRecord(source, now, level, nil, err))
	})
}

func (f *JSONFacility) writeObject(ctx context.Context, path, object string) error {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	size, err := f.store.Size(ctx, path)
	if err != nil {
		return err
	}

	switch {
	case size == 0:
		// The file vanished after it was opened; start a new array.
		return f.store.Write(ctx, path, 0, "["+object+"]")
	case size > int64(len(emptyArray)):
		return f.store.Write(ctx, path, -1, ","+object+"]")
	default:
		return f.store.Write(ctx, path, -1, object+"]")
	}
}

// EncodeJSONRecord renders one event as a JSON object. Exactly one of
// message and err is expected to be set.
//
// Keys appear in a fixed order: source, time, level, message or error, and
// args when the message has arguments with non-nil values. Argument values
// are written as strings: strings as they are, anything else in the
// log.FormatValue rendering.
func EncodeJSONRecord(source string, now time.Time, level log.Level, message *log.Message, err error) string {
	var b strings.Builder
	b.Grow(256)

	b.WriteByte('{')
	writeJSONEntry(&b, "source", source)
	b.WriteByte(',')
	writeJSONEntry(&b, "time", timestamp(now))
	b.WriteByte(',')
	writeJSONEntry(&b, "level", level.String())

	if message != nil {
		b.WriteByte(',')
		writeJSONEntry(&b, "message", message.Text)
	}
	if err != nil {
		b.WriteByte(',')
		writeJSONEntry(&b, "error", log.FormatError(err))
	}
	if message != nil {
		writeJSONArgs(&b, message.Args)
	}

	b.WriteByte('}')
	return b.String()
}

func writeJSONArgs(b *strings.Builder, args []log.Arg) {
	first := true
	for _, arg := range args {
		if arg.Value == nil {
			continue
		}
		if first {
			b.WriteString(`,"args":{`)
			first = false
		} else {
			b.WriteByte(',')
		}
		writeJSONEntry(b, arg.Label, argText(arg.Value))
	}
	if !first {
		b.WriteByte('}')
	}
}

func argText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return log.FormatValue(value)
}

func writeJSONEntry(b *strings.Builder, key, value string) {
	writeJSONString(b, key)
	b.WriteByte(':')
	writeJSONString(b, value)
}

// writeJSONString writes s as a quoted JSON string. Backslash, slash,
// quote, backspace, carriage return, line feed and tab use their short
// escapes; other control characters use \u00XX.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '/':
			b.WriteString(`\/`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// Compile-time interface satisfaction check.
var _ log.Facility = (*JSONFacility)(nil)
