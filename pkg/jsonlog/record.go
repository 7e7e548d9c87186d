package jsonlog

import (
	"time"

	"github.com/dailylog/dailylog/pkg/log"
)

// TimeLayout is the layout of the time field, always in UTC.
const TimeLayout = time.DateTime

// Record is one element of a JSON log file. Exactly one of Message and
// Error is set. CBOR encoding uses integer keys for compactness.
type Record struct {
	// Source identifies the component that logged the event.
	Source string `json:"source" cbor:"1,keyasint"`

	// Time is the UTC time the event was written, in TimeLayout.
	Time string `json:"time" cbor:"2,keyasint"`

	// Level is the uppercase level label.
	Level string `json:"level" cbor:"3,keyasint"`

	Message string `json:"message,omitempty" cbor:"4,keyasint,omitempty"`
	Error   string `json:"error,omitempty" cbor:"5,keyasint,omitempty"`

	// Args holds the message arguments rendered as strings.
	Args map[string]any `json:"args,omitempty" cbor:"6,keyasint,omitempty"`
}

// Timestamp parses Time.
func (r Record) Timestamp() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, r.Time, time.UTC)
}

// LogLevel parses Level.
func (r Record) LogLevel() (log.Level, error) {
	return log.ParseLevel(r.Level)
}

// IsError reports whether the record holds an error rather than a message.
func (r Record) IsError() bool {
	return r.Error != ""
}

// Text returns the message or the error, whichever is set.
func (r Record) Text() string {
	if r.IsError() {
		return r.Error
	}
	return r.Message
}
