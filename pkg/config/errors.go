package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrDuplicateName is returned when two facilities share a name.
	ErrDuplicateName = errors.New("duplicate facility name")
)

// LoadError provides details about a configuration loading error.
type LoadError struct {
	// File is the path to the file that failed to load ("" for in-memory data).
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
