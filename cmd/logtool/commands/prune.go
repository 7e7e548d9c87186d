package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/logdate"
)

// PruneOptions configures the prune command.
type PruneOptions struct {
	// Keep is the number of most recent days whose files survive.
	Keep int

	// DryRun lists the files that would be deleted without deleting them.
	DryRun bool
}

// RunPrune deletes the log files under dir that are older than the newest
// opts.Keep days. Files whose name does not hold a date are left alone. It
// returns the deleted (or, in a dry run, doomed) paths.
func RunPrune(ctx context.Context, store fileio.Store, dir string, opts PruneOptions, w io.Writer) ([]string, error) {
	if opts.Keep < 0 {
		return nil, fmt.Errorf("invalid keep: %d (must not be negative)", opts.Keep)
	}

	files, err := store.Files(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	byDate := make(map[logdate.Date][]string)
	var dates []logdate.Date
	for _, f := range files {
		d, ok := logdate.DefaultCodec.Decode(filepath.Base(f))
		if !ok {
			continue
		}
		if _, seen := byDate[d]; !seen {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], f)
	}

	// Newest first
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	if len(dates) <= opts.Keep {
		return nil, nil
	}

	var doomed []string
	for _, d := range dates[opts.Keep:] {
		doomed = append(doomed, byDate[d]...)
	}
	sort.Strings(doomed)

	for _, f := range doomed {
		if opts.DryRun {
			fmt.Fprintf(w, "would delete %s\n", f)
			continue
		}
		if err := store.Delete(ctx, f); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", f, err)
		}
		fmt.Fprintf(w, "deleted %s\n", f)
	}
	return doomed, nil
}
