package log

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the severity of a log event.
type Level uint8

const (
	// LevelInfo records normal operation.
	LevelInfo Level = 0
	// LevelWarning is an unplanned event that obstructs but does not break the app.
	LevelWarning Level = 10
	// LevelError is an unplanned event that makes the app malfunction without crashing.
	LevelError Level = 90
	// LevelCrash is an event that crashed the app.
	LevelCrash Level = 99
)

// Levels lists every level in ascending severity.
var Levels = []Level{LevelInfo, LevelWarning, LevelError, LevelCrash}

// Label returns the lowercase name of the level.
func (l Level) Label() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// String returns the uppercase name of the level.
func (l Level) String() string {
	return strings.ToUpper(l.Label())
}

// Emoticon returns the glyph used to spot the level in console output.
func (l Level) Emoticon() string {
	switch l {
	case LevelInfo:
		return "🔍️"
	case LevelWarning:
		return "😱"
	case LevelError:
		return "🐞"
	case LevelCrash:
		return "💥"
	default:
		return "❔"
	}
}

// Severity returns the numeric value used for threshold comparisons.
func (l Level) Severity() int {
	return int(l)
}

// AtLeast reports whether l is as severe as min.
func (l Level) AtLeast(min Level) bool {
	return l.Severity() >= min.Severity()
}

// ParseLevel parses a level name, ignoring case and surrounding space.
// "warn" is accepted as an alias for warning.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "crash":
		return LevelCrash, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
