package logdate

import (
	"errors"
	"fmt"
	"time"
)

// Date validation errors.
var (
	ErrInvalidYear  = errors.New("year must be within the range 0..9999")
	ErrInvalidMonth = errors.New("month must be within the range 1..12")
	ErrInvalidDay   = errors.New("day must be within the range 1..31")
)

// Date is a calendar date corresponding with a log file.
// It is an immutable value type; compare with == or After.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New returns a Date after validating the year, month and day ranges.
// Years are limited to four digits so every Date fits a file name token.
func New(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is like New but panics on invalid input. Intended for constants
// and tests.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the UTC calendar date of t. It does not validate the
// year; times outside years 0..9999 produce names that do not decode.
func FromTime(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: int(u.Month()), Day: u.Day()}
}

// Today returns the current UTC date according to clock.
// A nil clock means time.Now.
func Today(clock func() time.Time) Date {
	if clock == nil {
		clock = time.Now
	}
	return FromTime(clock())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the date encoded with DefaultCodec.
func (d Date) String() string {
	return DefaultCodec.Encode(d)
}
