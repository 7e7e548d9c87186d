package log

// Logger is the entry point applications log through. A Logger is bound to
// a source tag and is safe for concurrent use.
//
// Every call returns immediately. The event is delivered on the Logger's
// Scope to the facilities that are enabled in its Registry when the task
// runs.
type Logger struct {
	source     string
	decoration *Decoration
	scope      Scope
	registry   *Registry
}

// Option configures a Logger.
type Option func(*Logger)

// WithDecoration sets the decoration used by Lifecycle.
func WithDecoration(d *Decoration) Option {
	return func(l *Logger) {
		l.decoration = d
	}
}

// WithScope sets the scope log tasks run on. Defaults to DefaultScope.
func WithScope(s Scope) Option {
	return func(l *Logger) {
		if s != nil {
			l.scope = s
		}
	}
}

// WithRegistry sets the registry to fan out to. Defaults to DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(l *Logger) {
		if r != nil {
			l.registry = r
		}
	}
}

// New creates a Logger for source.
func New(source string, opts ...Option) *Logger {
	l := &Logger{
		source:   source,
		scope:    DefaultScope(),
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the source tag of the logger.
func (l *Logger) Source() string {
	return l.source
}

// Scope returns the scope log tasks run on.
func (l *Logger) Scope() Scope {
	return l.scope
}

// WithSource returns a copy of the logger bound to another source tag.
func (l *Logger) WithSource(source string) *Logger {
	c := *l
	c.source = source
	return &c
}

// Info logs msg at INFO.
func (l *Logger) Info(msg string, args ...Arg) {
	l.Log(LevelInfo, NewMessage(msg, args...))
}

// Warning logs msg at WARNING.
func (l *Logger) Warning(msg string, args ...Arg) {
	l.Log(LevelWarning, NewMessage(msg, args...))
}

// Error logs msg at ERROR.
func (l *Logger) Error(msg string, args ...Arg) {
	l.Log(LevelError, NewMessage(msg, args...))
}

// Crash logs msg at CRASH.
func (l *Logger) Crash(msg string, args ...Arg) {
	l.Log(LevelCrash, NewMessage(msg, args...))
}

// InfoErr logs msg and err at INFO.
func (l *Logger) InfoErr(msg string, err error, args ...Arg) {
	l.LogErr(LevelInfo, NewMessage(msg, args...), err)
}

// WarningErr logs msg and err at WARNING.
func (l *Logger) WarningErr(msg string, err error, args ...Arg) {
	l.LogErr(LevelWarning, NewMessage(msg, args...), err)
}

// ErrorErr logs msg and err at ERROR.
func (l *Logger) ErrorErr(msg string, err error, args ...Arg) {
	l.LogErr(LevelError, NewMessage(msg, args...), err)
}

// CrashErr logs msg and err at CRASH.
func (l *Logger) CrashErr(msg string, err error, args ...Arg) {
	l.LogErr(LevelCrash, NewMessage(msg, args...), err)
}

// Lifecycle logs a lifecycle change at INFO, rendered with the logger's
// decoration.
func (l *Logger) Lifecycle(event Lifecycle) {
	l.Info(FormatLifecycle(event, l.decoration))
}

// Log logs message at level.
func (l *Logger) Log(level Level, message Message) {
	l.LogSourceErr(l.source, level, message, nil)
}

// LogErr logs message at level, followed by err when it is not nil.
func (l *Logger) LogErr(level Level, message Message, err error) {
	l.LogSourceErr(l.source, level, message, err)
}

// LogSource logs message at level under another source tag.
func (l *Logger) LogSource(source string, level Level, message Message) {
	l.LogSourceErr(source, level, message, nil)
}

// LogSourceErr logs message at level under another source tag, followed by
// err when it is not nil. Each facility receives the message event and then
// the error event.
func (l *Logger) LogSourceErr(source string, level Level, message Message, err error) {
	registry := l.registry
	l.scope.Go(func() {
		for _, f := range registry.Enabled() {
			f.Log(source, level, message)
			if err != nil {
				f.LogError(source, level, err)
			}
		}
	})
}
