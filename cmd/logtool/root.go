package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dailylog/dailylog/cmd/logtool/commands"
	"github.com/dailylog/dailylog/pkg/config"
	"github.com/dailylog/dailylog/pkg/facility"
	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/logdate"
)

var errNoConfig = errors.New("no config file (use --config)")

type rootOptions struct {
	configPath string
	verbose    bool
}

// logger returns the diagnostics logger, or nil when --verbose is off.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	if !o.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return nil, errNoConfig
	}
	return config.Load(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "logtool",
		Short:         "Inspect and maintain daily log folders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Logging config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newListCmd(),
		newExportCmd(),
		newFilterCmd(),
		newStatsCmd(),
		newPruneCmd(),
		newWatchCmd(opts),
		newWriteCmd(opts),
	)
	return root
}

func newListCmd() *cobra.Command {
	var after string

	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "List the log files of a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var date *logdate.Date
			if after != "" {
				d, err := commands.ParseDateFlag(after)
				if err != nil {
					return err
				}
				date = &d
			}
			return commands.RunList(cmd.Context(), fileio.NewOSStore(), args[0], date, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "Only files dated strictly after this day (YYYY-MM-DD)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <file.json>",
		Short: "Export a JSON log file to JSONL, CSV or CBOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv, cbor)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var filterOpts commands.FilterOptions

	cmd := &cobra.Command{
		Use:   "filter <file.json>",
		Short: "Filter a JSON log file and write a new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.RunFilter(args[0], filterOpts, cmd.OutOrStdout())
			return err
		},
	}
	addFilterFlags(cmd, &filterOpts)
	cmd.Flags().StringVar(&filterOpts.TimeStart, "time-start", "", "Records at or after this time (YYYY-MM-DD HH:MM:SS or RFC3339)")
	cmd.Flags().StringVar(&filterOpts.TimeEnd, "time-end", "", "Records before this time (YYYY-MM-DD HH:MM:SS or RFC3339)")
	cmd.Flags().StringVarP(&filterOpts.Output, "output", "o", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	cmd.Flags().StringVar(&opts.Source, "source", "", "Filter by source")
	cmd.Flags().StringVar(&opts.Level, "level", "", "Minimum level (info, warning, error, crash)")
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.json>",
		Short: "Show statistics about a JSON log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

func newPruneCmd() *cobra.Command {
	var opts commands.PruneOptions

	cmd := &cobra.Command{
		Use:   "prune <dir>",
		Short: "Delete log files older than the newest N days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.RunPrune(cmd.Context(), fileio.NewOSStore(), args[0], opts, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().IntVar(&opts.Keep, "keep", 7, "Number of most recent days to keep")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only print what would be deleted")
	return cmd
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Print log file changes in a folder until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := commands.NewWatcher(args[0], root.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer w.Close()
			return w.Run(ctx, cmd.OutOrStdout())
		},
	}
}

func newWriteCmd(root *rootOptions) *cobra.Command {
	opts := commands.WriteOptions{Level: "info"}

	cmd := &cobra.Command{
		Use:   "write <message...>",
		Short: "Emit one event through the configured facilities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			opts.Message = strings.Join(args, " ")
			logger := root.logger(cmd.ErrOrStderr())
			return commands.RunWrite(cfg, opts, cmd.OutOrStdout(),
				config.WithFacilityOptions(facility.WithLogger(logger)))
		},
	}
	cmd.Flags().StringVar(&opts.Source, "source", "logtool", "Event source")
	cmd.Flags().StringVar(&opts.Level, "level", opts.Level, "Event level (info, warning, error, crash)")
	cmd.Flags().StringArrayVar(&opts.Args, "arg", nil, "Message argument as key=value (repeatable)")
	return cmd
}
