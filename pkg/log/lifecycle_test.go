package log

import "testing"

func TestFormatLifecycle(t *testing.T) {
	tests := []struct {
		name       string
		event      Lifecycle
		decoration *Decoration
		want       string
	}{
		{"no decoration", LifecycleCreated, nil, "CREATED"},
		{"lowercase", LifecyclePaused, &Decoration{}, "paused"},
		{"prefix suffix", LifecycleResumed, &Decoration{Prefix: "app ", Suffix: "!"}, "app resumed!"},
		{"uppercase", LifecycleFinished, &Decoration{Prefix: "-- ", Suffix: " --", Uppercase: true}, "-- FINISHED --"},
		{"destroyed", LifecycleDestroyed, nil, "DESTROYED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLifecycle(tt.event, tt.decoration); got != tt.want {
				t.Errorf("FormatLifecycle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLifecycleString(t *testing.T) {
	want := []string{"created", "paused", "resumed", "finished", "destroyed"}
	events := []Lifecycle{LifecycleCreated, LifecyclePaused, LifecycleResumed, LifecycleFinished, LifecycleDestroyed}

	for i, e := range events {
		if e.String() != want[i] {
			t.Errorf("Lifecycle(%d).String() = %q, want %q", e, e.String(), want[i])
		}
	}
}
