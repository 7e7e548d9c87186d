package fileio

import (
	"context"
	"errors"

	"github.com/dailylog/dailylog/pkg/logdate"
)

// Store errors.
var (
	ErrNotDirectory = errors.New("path is not a directory")
	ErrIsDirectory  = errors.New("path is a directory")
)

// Lister retrieves the log files residing inside a directory.
// Returned paths are absolute; their order is unspecified.
type Lister interface {
	// Files returns every regular file under dir.
	Files(ctx context.Context, dir string) ([]string, error)

	// FilesAfter returns the files under dir whose name decodes to a date
	// strictly after date. Files whose name does not decode are excluded.
	FilesAfter(ctx context.Context, dir string, date logdate.Date) ([]string, error)
}

// Store performs the file input/output needed by the log facilities.
// Implementations must be safe for concurrent use.
type Store interface {
	Lister

	// Separator returns the character separating path components.
	Separator() rune

	// MakeDirectories creates path and any missing parents. It returns true
	// if path is a directory afterwards, including when it already existed.
	MakeDirectories(ctx context.Context, path string) bool

	// Size returns the size of the file in bytes, or 0 if it does not exist.
	Size(ctx context.Context, path string) (int64, error)

	// Write writes contents at the relative position (see RelativeToSize),
	// overwriting existing bytes in place. Bytes after the written span are
	// kept.
	Write(ctx context.Context, path string, position int64, contents string) error

	// Append writes contents at end-of-file, creating the file if needed.
	Append(ctx context.Context, path string, contents string) error

	// Ensure creates an empty file at path, and its parent directories, if
	// the file does not exist yet.
	Ensure(ctx context.Context, path string) error

	// Delete removes the file at path. A missing file is not an error.
	Delete(ctx context.Context, path string) error
}

// StoreOption configures a Store implementation.
type StoreOption func(*storeOptions)

type storeOptions struct {
	codec logdate.Codec
}

func defaultStoreOptions() storeOptions {
	return storeOptions{codec: logdate.DefaultCodec}
}

// WithListingCodec sets the codec used by FilesAfter to decode file names.
func WithListingCodec(c logdate.Codec) StoreOption {
	return func(o *storeOptions) {
		o.codec = c
	}
}
