package log

// Facility is a destination for log events. Implementations must be safe
// for concurrent use and should return quickly; slow work belongs on a Scope.
type Facility interface {
	// Enabled reports whether the facility currently accepts events.
	Enabled() bool

	// Log records a message from source at level.
	Log(source string, level Level, message Message)

	// LogError records an error from source at level.
	LogError(source string, level Level, err error)
}

// NoopFacility discards all events. Use when logging is disabled.
// NoopFacility is safe for concurrent use and usable as a zero value.
type NoopFacility struct{}

// Enabled returns false.
func (NoopFacility) Enabled() bool { return false }

// Log discards the message.
func (NoopFacility) Log(string, Level, Message) {}

// LogError discards the error.
func (NoopFacility) LogError(string, Level, error) {}

// Compile-time interface satisfaction check.
var _ Facility = NoopFacility{}
