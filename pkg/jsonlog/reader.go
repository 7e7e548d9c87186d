package jsonlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dailylog/dailylog/pkg/log"
)

// ErrNotArray is returned when a log file does not hold a JSON array.
var ErrNotArray = errors.New("log file is not a JSON array")

// Filter specifies criteria for filtering records.
// Empty/nil fields match all records for that criterion.
type Filter struct {
	// Source filters by exact source match.
	Source string

	// MinLevel filters records less severe than this level.
	MinLevel *log.Level

	// TimeStart filters records at or after this time.
	TimeStart *time.Time

	// TimeEnd filters records before this time.
	TimeEnd *time.Time
}

// Matches returns true if the record matches all filter criteria. Records
// whose level or time cannot be parsed only match filters that do not look
// at them.
func (f *Filter) Matches(record Record) bool {
	if f.Source != "" && record.Source != f.Source {
		return false
	}
	if f.MinLevel != nil {
		level, err := record.LogLevel()
		if err != nil || !level.AtLeast(*f.MinLevel) {
			return false
		}
	}
	if f.TimeStart != nil || f.TimeEnd != nil {
		ts, err := record.Timestamp()
		if err != nil {
			return false
		}
		if f.TimeStart != nil && ts.Before(*f.TimeStart) {
			return false
		}
		if f.TimeEnd != nil && !ts.Before(*f.TimeEnd) {
			return false
		}
	}
	return true
}

// Reader reads records from a JSON log file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	closer  io.Closer
	decoder *json.Decoder
	filter  Filter
	started bool
}

// NewReader creates a Reader that reads all records from the specified log file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads records matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewStreamReader(f, filter)
	r.closer = f
	return r, nil
}

// NewStreamReader creates a Reader over an arbitrary stream. Close does not
// close r.
func NewStreamReader(r io.Reader, filter Filter) *Reader {
	return &Reader{
		decoder: json.NewDecoder(r),
		filter:  filter,
	}
}

// Next returns the next record that matches the filter.
// Returns io.EOF when no more records are available.
func (r *Reader) Next() (Record, error) {
	if !r.started {
		if err := r.start(); err != nil {
			return Record{}, err
		}
	}

	for r.decoder.More() {
		var record Record
		if err := r.decoder.Decode(&record); err != nil {
			return Record{}, fmt.Errorf("decode record: %w", err)
		}
		if r.filter.Matches(record) {
			return record, nil
		}
	}
	return Record{}, io.EOF
}

func (r *Reader) start() error {
	r.started = true

	tok, err := r.decoder.Token()
	if errors.Is(err, io.EOF) {
		// An empty file has no records yet.
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%w: starts with %v", ErrNotArray, tok)
	}
	return nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadFile reads every record of the log file at path.
func ReadFile(path string) ([]Record, error) {
	return ReadFiltered(path, Filter{})
}

// ReadFiltered reads the records of the log file at path that match filter.
func ReadFiltered(path string, filter Filter) ([]Record, error) {
	r, err := NewFilteredReader(path, filter)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return collect(r)
}

// ReadAll reads every record matching filter from a stream.
func ReadAll(in io.Reader, filter Filter) ([]Record, error) {
	return collect(NewStreamReader(in, filter))
}

func collect(r *Reader) ([]Record, error) {
	var records []Record
	for {
		record, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}
