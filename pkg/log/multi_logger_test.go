package log

import (
	"errors"
	"testing"
)

func TestMultiFacilityCallsAll(t *testing.T) {
	f1 := &recordingFacility{}
	f2 := &recordingFacility{}
	f3 := &recordingFacility{}

	multi := NewMultiFacility(f1, f2, f3)
	multi.Log("sync", LevelWarning, NewMessage("slow peer", A("peer", "a")))

	for i, f := range []*recordingFacility{f1, f2, f3} {
		events := f.recorded()
		if len(events) != 1 {
			t.Errorf("facility %d: got %d events, want 1", i, len(events))
			continue
		}
		if events[0].Message != `slow peer [peer="a"]` {
			t.Errorf("facility %d: Message = %q", i, events[0].Message)
		}
		if events[0].Level != LevelWarning {
			t.Errorf("facility %d: Level = %v, want WARNING", i, events[0].Level)
		}
	}
}

func TestMultiFacilityEmptyList(t *testing.T) {
	multi := NewMultiFacility()

	// Should not panic with empty facility list
	multi.Log("sync", LevelInfo, NewMessage("hello"))
	multi.LogError("sync", LevelError, errors.New("boom"))

	if multi.Enabled() {
		t.Error("empty MultiFacility should not be enabled")
	}
}

func TestMultiFacilitySkipsDisabled(t *testing.T) {
	enabled := &recordingFacility{}
	disabled := &recordingFacility{}
	disabled.setEnabled(false)

	multi := NewMultiFacility(enabled, disabled)
	if !multi.Enabled() {
		t.Fatal("MultiFacility with one enabled member should be enabled")
	}

	err := errors.New("boom")
	multi.LogError("sync", LevelError, err)

	if got := len(enabled.recorded()); got != 1 {
		t.Errorf("enabled facility got %d events, want 1", got)
	}
	if got := len(disabled.recorded()); got != 0 {
		t.Errorf("disabled facility got %d events, want 0", got)
	}
	if enabled.recorded()[0].Err != err {
		t.Errorf("Err = %v, want %v", enabled.recorded()[0].Err, err)
	}
}
