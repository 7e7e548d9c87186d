package jsonlog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailylog/dailylog/pkg/facility"
	"github.com/dailylog/dailylog/pkg/log"
)

type testEvent struct {
	at      time.Time
	source  string
	level   log.Level
	message string
	err     error
}

// createTestLogFile writes events through a JSONFacility and returns the
// path of the resulting file.
func createTestLogFile(t *testing.T, events []testEvent) string {
	t.Helper()
	dir := t.TempDir()

	var now time.Time
	f, err := facility.NewJSONFacility(dir,
		facility.WithMinimumLevel(log.LevelInfo),
		facility.WithScope(&log.InlineScope{}),
		facility.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("failed to create facility: %v", err)
	}

	for _, e := range events {
		now = e.at
		if e.err != nil {
			f.LogError(e.source, e.level, e.err)
		} else {
			f.Log(e.source, e.level, log.NewMessage(e.message, log.A("n", len(e.message))))
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close facility: %v", err)
	}

	files, err := f.Files(context.Background())
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one log file, got %v (%v)", files, err)
	}
	return files[0]
}

var base = time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)

func sampleEvents() []testEvent {
	return []testEvent{
		{at: base, source: "sync", level: log.LevelInfo, message: "start"},
		{at: base.Add(time.Minute), source: "ble", level: log.LevelWarning, message: "weak"},
		{at: base.Add(2 * time.Minute), source: "sync", level: log.LevelError, err: errors.New("timeout")},
		{at: base.Add(3 * time.Minute), source: "ui", level: log.LevelCrash, message: "gone"},
	}
}

func TestReaderIteratesRecords(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Record
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, record)
	}

	if len(read) != 4 {
		t.Fatalf("got %d records, want 4", len(read))
	}

	// Verify order
	if read[0].Message != "start" || read[3].Message != "gone" {
		t.Errorf("unexpected order: %+v", read)
	}
	if read[0].Args["n"] != "5" {
		t.Errorf("Args = %v, want n=5", read[0].Args)
	}
	if read[2].Error != "timeout" || read[2].Args != nil {
		t.Errorf("error record = %+v", read[2])
	}
	if read[1].Time != "2024-03-07 10:01:00" {
		t.Errorf("Time = %q", read[1].Time)
	}
}

func TestReaderFilters(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	warning := log.LevelWarning
	start := base.Add(time.Minute)
	end := base.Add(3 * time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"start", "weak", "timeout", "gone"}},
		{"source", Filter{Source: "sync"}, []string{"start", "timeout"}},
		{"min level", Filter{MinLevel: &warning}, []string{"weak", "timeout", "gone"}},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, []string{"weak", "timeout"}},
		{"combined", Filter{Source: "sync", MinLevel: &warning}, []string{"timeout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadFiltered(path, tt.filter)
			require.NoError(t, err)

			var got []string
			for _, r := range records {
				got = append(got, r.Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadAllEdgeCases(t *testing.T) {
	records, err := ReadAll(strings.NewReader(""), Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ReadAll(strings.NewReader("[]"), Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = ReadAll(strings.NewReader(`{"source":"x"}`), Filter{})
	assert.ErrorIs(t, err, ErrNotArray)

	_, err = ReadAll(strings.NewReader(`[{"source":"x"},{"source":`), Filter{})
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFilterSkipsUnparseableRecords(t *testing.T) {
	warning := log.LevelWarning
	f := Filter{MinLevel: &warning}
	assert.False(t, f.Matches(Record{Level: "LOUD"}))

	start := base
	f = Filter{TimeStart: &start}
	assert.False(t, f.Matches(Record{Time: "yesterday"}))

	assert.True(t, (&Filter{}).Matches(Record{Time: "yesterday", Level: "LOUD"}))
}
