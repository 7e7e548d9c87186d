package facility

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/log"
	"github.com/dailylog/dailylog/pkg/logdate"
)

// Facility errors.
var (
	// ErrInvalidFolder is returned when the base log folder cannot be created.
	ErrInvalidFolder = errors.New("invalid log folder")

	// ErrNilSink is returned when a RemoteFacility is created without a sink.
	ErrNilSink = errors.New("remote sink is nil")
)

// DefaultMinimumLevel is the minimum level of file and remote facilities.
const DefaultMinimumLevel = log.LevelWarning

// Option configures a facility.
type Option func(*options)

type options struct {
	minimum  log.Level
	store    fileio.Store
	scope    log.Scope
	notifier fileio.Notifier
	clock    func() time.Time
	logger   *slog.Logger
	codec    logdate.Codec
}

func defaultOptions(minimum log.Level) options {
	return options{
		minimum: minimum,
		clock:   time.Now,
		codec:   logdate.DefaultCodec,
	}
}

func applyOptions(minimum log.Level, opts []Option) options {
	o := defaultOptions(minimum)
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = fileio.NewOSStore(fileio.WithListingCodec(o.codec))
	}
	if o.scope == nil {
		o.scope = log.NewScope()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}

// WithMinimumLevel drops events less severe than level.
func WithMinimumLevel(level log.Level) Option {
	return func(o *options) {
		o.minimum = level
	}
}

// WithStore sets the file store. Defaults to an OS store.
func WithStore(store fileio.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithScope sets the scope writes run on. Defaults to a scope owned by the
// facility.
func WithScope(scope log.Scope) Option {
	return func(o *options) {
		o.scope = scope
	}
}

// WithNotifier sets the notifier told about opened and closed files. If the
// notifier also implements fileio.FailureNotifier it hears about dropped
// events.
func WithNotifier(n fileio.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithClock sets the time source. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger for the facility's own diagnostics.
// If nil, diagnostics are disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCodec sets the codec used to name daily files.
func WithCodec(codec logdate.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}
