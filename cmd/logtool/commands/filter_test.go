package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dailylog/dailylog/pkg/jsonlog"
)

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.json")

	var buf bytes.Buffer
	n, err := RunFilter(path, FilterOptions{
		Output:    out,
		Source:    "sync",
		TimeStart: "2024-03-07 10:01:00",
		TimeEnd:   "2024-03-07T10:03:00Z",
	}, &buf)
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("filtered %d records, want 1", n)
	}
	if !strings.Contains(buf.String(), "Filtered 1 records to "+out) {
		t.Errorf("output = %q", buf.String())
	}

	records, err := jsonlog.ReadFile(out)
	if err != nil {
		t.Fatalf("filtered file unreadable: %v", err)
	}
	if len(records) != 1 || records[0].Error != "timeout" {
		t.Errorf("records = %+v", records)
	}
}

func TestRunFilterNoMatchWritesEmptyArray(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.json")

	n, err := RunFilter(path, FilterOptions{Output: out, Source: "nobody"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 0 {
		t.Errorf("filtered %d records, want 0", n)
	}

	records, err := jsonlog.ReadFile(out)
	if err != nil {
		t.Fatalf("filtered file unreadable: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v", records)
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []FilterOptions{
		{Level: "loud"},
		{TimeStart: "yesterday"},
		{TimeEnd: "2024-03-07"},
	}
	for _, opts := range tests {
		if _, err := opts.BuildFilter(); err == nil {
			t.Errorf("BuildFilter(%+v) should fail", opts)
		}
	}
}
