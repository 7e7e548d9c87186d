package logdate

import (
	"strconv"
	"strings"
)

// DefaultSeparator separates the date components in log file names.
const DefaultSeparator = '-'

// Encoded token lengths.
const (
	lengthWithoutSeparator = 8
	lengthWithSeparator    = 10
)

// Codec encodes and decodes dates to and from file name tokens.
// A zero Separator means the components are written without separators.
type Codec struct {
	Separator rune
}

var (
	// DefaultCodec produces tokens like 2024-03-07.
	DefaultCodec = Codec{Separator: DefaultSeparator}

	// CompactCodec produces tokens like 20240307.
	CompactCodec = Codec{}
)

// Encode returns the file name token for d, without extension.
func (c Codec) Encode(d Date) string {
	var b strings.Builder
	b.Grow(lengthWithSeparator)
	b.WriteString(pad(d.Year, 4))
	if c.Separator != 0 {
		b.WriteRune(c.Separator)
	}
	b.WriteString(pad(d.Month, 2))
	if c.Separator != 0 {
		b.WriteRune(c.Separator)
	}
	b.WriteString(pad(d.Day, 2))
	return b.String()
}

// Decode parses a file name (with or without extension) into a Date.
// It returns false when the name does not hold a valid encoded date.
func (c Codec) Decode(name string) (Date, bool) {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}

	var digits string
	if c.Separator == 0 {
		if len(name) != lengthWithoutSeparator {
			return Date{}, false
		}
		digits = name
	} else {
		sep := string(c.Separator)
		if len(name) != 8+2*len(sep) {
			return Date{}, false
		}
		if name[4:4+len(sep)] != sep || name[6+len(sep):6+2*len(sep)] != sep {
			return Date{}, false
		}
		digits = name[:4] + name[4+len(sep):6+len(sep)] + name[6+2*len(sep):]
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Date{}, false
		}
	}

	year, _ := strconv.Atoi(digits[0:4])
	month, _ := strconv.Atoi(digits[4:6])
	day, _ := strconv.Atoi(digits[6:8])

	d, err := New(year, month, day)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// MatchesAfter reports whether name decodes to a date and, when after is
// non-nil, whether that date is strictly later than *after.
func (c Codec) MatchesAfter(name string, after *Date) bool {
	d, ok := c.Decode(name)
	if !ok {
		return false
	}
	return after == nil || d.After(*after)
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
