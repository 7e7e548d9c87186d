package log

import "strings"

// Lifecycle is an application lifecycle change worth recording.
type Lifecycle uint8

const (
	// LifecycleCreated is logged when the app starts for the first time.
	LifecycleCreated Lifecycle = iota
	// LifecyclePaused is logged when the app moves to the background.
	LifecyclePaused
	// LifecycleResumed is logged when the app returns to the foreground.
	LifecycleResumed
	// LifecycleFinished is logged when the user exits the app.
	LifecycleFinished
	// LifecycleDestroyed is logged when the host terminates the app.
	LifecycleDestroyed
)

// String returns the lowercase name of the event.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleCreated:
		return "created"
	case LifecyclePaused:
		return "paused"
	case LifecycleResumed:
		return "resumed"
	case LifecycleFinished:
		return "finished"
	case LifecycleDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Decoration controls how lifecycle events are rendered.
type Decoration struct {
	Prefix    string
	Suffix    string
	Uppercase bool
}

// FormatLifecycle renders event wrapped in the decoration's prefix and
// suffix. The result is uppercased when decoration is nil or asks for it.
func FormatLifecycle(event Lifecycle, decoration *Decoration) string {
	s := event.String()
	if decoration != nil {
		s = decoration.Prefix + s + decoration.Suffix
	}
	if decoration == nil || decoration.Uppercase {
		s = strings.ToUpper(s)
	}
	return s
}
