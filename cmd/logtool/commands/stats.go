package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dailylog/dailylog/pkg/jsonlog"
	"github.com/dailylog/dailylog/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalRecords    int
	RecordsByLevel  map[string]int
	RecordsBySource map[string]int
	Errors          int
	TimeRange       struct {
		Start time.Time
		End   time.Time
	}
}

// CollectStats reads every record of reader.
func CollectStats(reader *jsonlog.Reader) (*Stats, error) {
	stats := &Stats{
		RecordsByLevel:  make(map[string]int),
		RecordsBySource: make(map[string]int),
	}

	err := each(reader, func(r jsonlog.Record) error {
		stats.TotalRecords++
		stats.RecordsByLevel[r.Level]++
		stats.RecordsBySource[r.Source]++
		if r.IsError() {
			stats.Errors++
		}

		// Track time range
		ts, err := r.Timestamp()
		if err != nil {
			return nil
		}
		if stats.TimeRange.Start.IsZero() || ts.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = ts
		}
		if ts.After(stats.TimeRange.End) {
			stats.TimeRange.End = ts
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := jsonlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := CollectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, path, stats)
	return nil
}

func printStats(w io.Writer, path string, stats *Stats) {
	fmt.Fprintf(w, "Log file: %s\n", path)
	fmt.Fprintf(w, "Total records: %d\n", stats.TotalRecords)
	fmt.Fprintf(w, "Error records: %d\n", stats.Errors)

	if !stats.TimeRange.Start.IsZero() {
		fmt.Fprintf(w, "First: %s\n", stats.TimeRange.Start.Format(jsonlog.TimeLayout))
		fmt.Fprintf(w, "Last:  %s\n", stats.TimeRange.End.Format(jsonlog.TimeLayout))
		fmt.Fprintf(w, "Span:  %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By level:")
	known := make(map[string]bool, len(log.Levels))
	for _, level := range log.Levels {
		known[level.String()] = true
		if n := stats.RecordsByLevel[level.String()]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", level, n)
		}
	}
	// Labels written by other tools
	for _, label := range sortedCountKeys(stats.RecordsByLevel) {
		if !known[label] {
			fmt.Fprintf(w, "  %s: %d\n", label, stats.RecordsByLevel[label])
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By source:")
	sources := sortedCountKeys(stats.RecordsBySource)
	sort.SliceStable(sources, func(i, j int) bool {
		return stats.RecordsBySource[sources[i]] > stats.RecordsBySource[sources[j]]
	})
	for _, s := range sources {
		fmt.Fprintf(w, "  %s: %d\n", s, stats.RecordsBySource[s])
	}
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
