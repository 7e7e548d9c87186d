package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dailylog/dailylog/pkg/facility"
	"github.com/dailylog/dailylog/pkg/log"
)

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	output     io.Writer
	facilities []facility.Option
}

// WithOutput sets where printer facilities write. Defaults to os.Stderr.
func WithOutput(w io.Writer) BuildOption {
	return func(o *buildOptions) {
		if w != nil {
			o.output = w
		}
	}
}

// WithFacilityOptions adds options applied to every built facility, after
// the configured minimum level.
func WithFacilityOptions(opts ...facility.Option) BuildOption {
	return func(o *buildOptions) {
		o.facilities = append(o.facilities, opts...)
	}
}

type closer interface {
	Close() error
}

// Build creates the configured facilities. The names are returned in
// declaration order. If any facility fails, the ones already created are
// closed.
func (c *Config) Build(opts ...BuildOption) (map[string]log.Facility, []string, error) {
	o := buildOptions{output: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	built := make(map[string]log.Facility, len(c.Facilities))
	names := make([]string, 0, len(c.Facilities))

	for _, fc := range c.Facilities {
		f, err := c.build(fc, o)
		if err != nil {
			closeAll(built)
			return nil, nil, fmt.Errorf("facility %q: %w", fc.Name, err)
		}
		built[fc.Name] = f
		names = append(names, fc.Name)
	}
	return built, names, nil
}

func (c *Config) build(fc FacilityConfig, o buildOptions) (log.Facility, error) {
	fopts := append([]facility.Option{facility.WithMinimumLevel(c.LevelFor(fc))}, o.facilities...)

	switch fc.Type {
	case TypeFile:
		return facility.NewFileFacility(c.folderFor(fc), fopts...)
	case TypeJSON:
		return facility.NewJSONFacility(c.folderFor(fc), fopts...)
	case TypePrinter:
		printer := facility.NewConsolePrinter(o.output)
		if fc.Color {
			printer = facility.NewColorConsolePrinter(o.output)
		}
		return facility.NewPrinterFacility(printer, fopts...), nil
	default:
		return nil, fmt.Errorf("unknown type %q", fc.Type)
	}
}

// Register builds the facilities and registers them with reg in declaration
// order. Names already present in reg are an error; facilities registered
// before the failure stay registered.
func (c *Config) Register(reg *log.Registry, opts ...BuildOption) ([]string, error) {
	built, names, err := c.Build(opts...)
	if err != nil {
		return nil, err
	}

	for i, name := range names {
		if !reg.Register(name, built[name]) {
			for _, rest := range names[i:] {
				closeFacility(built[rest])
			}
			return names[:i], fmt.Errorf("%w: %q already registered", ErrDuplicateName, name)
		}
	}
	return names, nil
}

// Close closes every facility in facilities that can be closed.
func Close(facilities map[string]log.Facility) error {
	var errs []error
	for _, f := range facilities {
		if c, ok := f.(closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

func closeAll(facilities map[string]log.Facility) {
	_ = Close(facilities)
}

func closeFacility(f log.Facility) {
	if c, ok := f.(closer); ok {
		_ = c.Close()
	}
}
