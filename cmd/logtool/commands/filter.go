package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dailylog/dailylog/pkg/jsonlog"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	Source    string
	Level     string
	TimeStart string
	TimeEnd   string
}

// BuildFilter turns command-line values into a record filter. Times use the
// on-disk layout (YYYY-MM-DD HH:MM:SS, UTC) or RFC 3339.
func (o FilterOptions) BuildFilter() (jsonlog.Filter, error) {
	filter := jsonlog.Filter{Source: o.Source}

	if o.Level != "" {
		l, err := ParseLevelFlag(o.Level)
		if err != nil {
			return filter, err
		}
		filter.MinLevel = &l
	}

	if o.TimeStart != "" {
		t, err := parseTimeFlag(o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := parseTimeFlag(o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

func parseTimeFlag(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(jsonlog.TimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// RunFilter filters the log file and writes matching records to a new JSON
// log file. It returns the number of records written.
func RunFilter(path string, opts FilterOptions, w io.Writer) (int, error) {
	filter, err := opts.BuildFilter()
	if err != nil {
		return 0, err
	}

	records, err := jsonlog.ReadFiltered(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to read log file: %w", err)
	}
	if records == nil {
		records = []jsonlog.Record{}
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(records); err != nil {
		return 0, fmt.Errorf("failed to write records: %w", err)
	}

	fmt.Fprintf(w, "Filtered %d records to %s\n", len(records), opts.Output)
	return len(records), nil
}
