// Package commands implements the logtool CLI commands.
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

// ParseDateFlag parses a YYYY-MM-DD date from a command-line flag.
func ParseDateFlag(s string) (logdate.Date, error) {
	d, ok := logdate.DefaultCodec.Decode(s)
	if !ok {
		return logdate.Date{}, fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// RunList prints the log files under dir, sorted by name. When after is not
// nil only files dated strictly after it are listed.
func RunList(ctx context.Context, lister fileio.Lister, dir string, after *logdate.Date, w io.Writer) error {
	var (
		files []string
		err   error
	)
	if after != nil {
		files, err = lister.FilesAfter(ctx, dir, *after)
	} else {
		files, err = lister.Files(ctx, dir)
	}
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})
	for _, f := range files {
		fmt.Fprintln(w, f)
	}
	return nil
}
