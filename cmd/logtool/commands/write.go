package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dailylog/dailylog/pkg/config"
	"github.com/dailylog/dailylog/pkg/log"
)

// WriteOptions describes the event emitted by the write command.
type WriteOptions struct {
	Source  string
	Level   string
	Message string

	// Args are key=value pairs attached to the message.
	Args []string
}

// RunWrite emits one event through the facilities of cfg and waits until it
// is written. Printer facilities write to out.
func RunWrite(cfg *config.Config, opts WriteOptions, out io.Writer, buildOpts ...config.BuildOption) error {
	level, err := ParseLevelFlag(opts.Level)
	if err != nil {
		return err
	}
	args, err := parseArgs(opts.Args)
	if err != nil {
		return err
	}

	facilities, names, err := cfg.Build(append([]config.BuildOption{config.WithOutput(out)}, buildOpts...)...)
	if err != nil {
		return fmt.Errorf("failed to build facilities: %w", err)
	}

	registry := log.NewRegistry()
	for _, name := range names {
		registry.Register(name, facilities[name])
	}

	scope := log.NewScope()
	logger := log.New(opts.Source, log.WithRegistry(registry), log.WithScope(scope))
	logger.Log(level, log.NewMessage(opts.Message, args...))

	return errors.Join(scope.Wait(), config.Close(facilities))
}

func parseArgs(pairs []string) ([]log.Arg, error) {
	args := make([]log.Arg, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid arg: %q (want key=value)", p)
		}
		args = append(args, log.A(k, v))
	}
	return args, nil
}
