package log

// MultiFacility sends events to multiple facilities.
// Useful when a single registry entry should feed, for example, both a
// console printer and a daily file.
type MultiFacility struct {
	facilities []Facility
}

// NewMultiFacility creates a MultiFacility that sends events to all provided facilities.
func NewMultiFacility(facilities ...Facility) *MultiFacility {
	return &MultiFacility{facilities: facilities}
}

// Enabled reports whether any member facility is enabled.
func (m *MultiFacility) Enabled() bool {
	for _, f := range m.facilities {
		if f.Enabled() {
			return true
		}
	}
	return false
}

// Log sends the message to all enabled member facilities.
func (m *MultiFacility) Log(source string, level Level, message Message) {
	for _, f := range m.facilities {
		if f.Enabled() {
			f.Log(source, level, message)
		}
	}
}

// LogError sends the error to all enabled member facilities.
func (m *MultiFacility) LogError(source string, level Level, err error) {
	for _, f := range m.facilities {
		if f.Enabled() {
			f.LogError(source, level, err)
		}
	}
}

// Compile-time interface satisfaction check.
var _ Facility = (*MultiFacility)(nil)
