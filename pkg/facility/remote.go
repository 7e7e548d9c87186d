package facility

import (
	"maps"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dailylog/dailylog/pkg/log"
)

// SessionProperty is the property carrying the facility's session id.
const SessionProperty = "session"

// RemoteSink is a remote logging backend such as a crash reporter.
// Implementations own the transport and must be safe for concurrent use.
type RemoteSink interface {
	Log(source string, level log.Level, message string, properties map[string]any)
	LogError(source string, level log.Level, err error, properties map[string]any)
	SetUserID(id string)
	ClearUserID()
}

// RemoteFacility forwards events to a RemoteSink together with a snapshot of
// its properties.
type RemoteFacility struct {
	sink    RemoteSink
	minimum log.Level
	session string

	mu         sync.RWMutex
	properties map[string]any
}

// NewRemoteFacility creates a RemoteFacility for sink. Only WARNING and more
// severe events are forwarded unless WithMinimumLevel says otherwise; other
// options are ignored.
func NewRemoteFacility(sink RemoteSink, opts ...Option) (*RemoteFacility, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	o := defaultOptions(DefaultMinimumLevel)
	for _, opt := range opts {
		opt(&o)
	}
	return &RemoteFacility{
		sink:       sink,
		minimum:    o.minimum,
		session:    uuid.NewString(),
		properties: make(map[string]any),
	}, nil
}

// Session returns the session id sent with every event.
func (r *RemoteFacility) Session() string {
	return r.session
}

// Enabled returns true.
func (r *RemoteFacility) Enabled() bool {
	return true
}

// Log forwards message rendered as "<emoticon> <LEVEL>: <message>".
func (r *RemoteFacility) Log(source string, level log.Level, message log.Message) {
	if !level.AtLeast(r.minimum) {
		return
	}
	r.sink.Log(source, level, Format(level, message.String()), r.snapshot())
}

// LogError forwards err.
func (r *RemoteFacility) LogError(source string, level log.Level, err error) {
	if !level.AtLeast(r.minimum) {
		return
	}
	r.sink.LogError(source, level, err, r.snapshot())
}

// SetUserID associates future events with id. A blank id clears it.
func (r *RemoteFacility) SetUserID(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		r.sink.ClearUserID()
		return
	}
	r.sink.SetUserID(id)
}

// ClearUserID removes the user association.
func (r *RemoteFacility) ClearUserID() {
	r.sink.ClearUserID()
}

// AddProperties merges props into the properties sent with every event.
func (r *RemoteFacility) AddProperties(props map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	maps.Copy(r.properties, props)
}

// RemoveProperties drops the named properties.
func (r *RemoteFacility) RemoveProperties(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.properties, k)
	}
}

// ClearProperties drops every property.
func (r *RemoteFacility) ClearProperties() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.properties)
}

// Properties returns a copy of the current properties.
func (r *RemoteFacility) Properties() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.properties)
}

// snapshot returns the properties of one event. Sinks may keep or modify it.
func (r *RemoteFacility) snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	props := make(map[string]any, len(r.properties)+1)
	maps.Copy(props, r.properties)
	props[SessionProperty] = r.session
	return props
}

// RemoteEvent is one event captured by RecordingSink.
type RemoteEvent struct {
	Source     string
	Level      log.Level
	Message    string
	Err        error
	Properties map[string]any
}

// RecordingSink is a RemoteSink that keeps events in memory. It is useful
// in tests and as a stand-in while no backend is configured.
type RecordingSink struct {
	mu     sync.Mutex
	events []RemoteEvent
	userID string
}

// Log records a message event.
func (s *RecordingSink) Log(source string, level log.Level, message string, properties map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, RemoteEvent{Source: source, Level: level, Message: message, Properties: properties})
}

// LogError records an error event.
func (s *RecordingSink) LogError(source string, level log.Level, err error, properties map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, RemoteEvent{Source: source, Level: level, Err: err, Properties: properties})
}

// SetUserID records id.
func (s *RecordingSink) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// ClearUserID forgets the user id.
func (s *RecordingSink) ClearUserID() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
}

// UserID returns the last id set.
func (s *RecordingSink) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Events returns a copy of the recorded events.
func (s *RecordingSink) Events() []RemoteEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RemoteEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Compile-time interface satisfaction checks.
var (
	_ log.Facility = (*RemoteFacility)(nil)
	_ RemoteSink   = (*RecordingSink)(nil)
)
