package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/dailylog/dailylog/pkg/facility"
	"github.com/dailylog/dailylog/pkg/log"
)

type testEvent struct {
	at      time.Time
	source  string
	level   log.Level
	message string
	args    []log.Arg
	err     error
}

var base = time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)

// createTestLogFile writes events through a JSONFacility in a fresh folder
// and returns the path of the resulting file.
func createTestLogFile(t *testing.T, events []testEvent) string {
	t.Helper()

	var now time.Time
	f, err := facility.NewJSONFacility(t.TempDir(),
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
			f.Log(e.source, e.level, log.NewMessage(e.message, e.args...))
		}
	}
	path := f.CurrentFile()
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close facility: %v", err)
	}
	if path == "" {
		t.Fatal("no log file written")
	}
	return path
}

func sampleEvents() []testEvent {
	return []testEvent{
		{at: base, source: "sync", level: log.LevelInfo, message: "start", args: []log.Arg{log.A("peer", "a")}},
		{at: base.Add(time.Minute), source: "ble", level: log.LevelWarning, message: "weak"},
		{at: base.Add(2 * time.Minute), source: "sync", level: log.LevelError, err: errors.New("timeout")},
		{at: base.Add(3 * time.Minute), source: "sync", level: log.LevelCrash, message: "gone"},
	}
}
