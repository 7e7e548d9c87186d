package fileio

import (
	"context"

	"github.com/dailylog/dailylog/pkg/logdate"
)

// FolderStore wraps a Store and makes sure a base folder exists before every
// operation. Log folders living in cache directories may be wiped by the host
// at any time; the folder is recreated transparently and the notifier is told
// when that is not possible.
type FolderStore struct {
	folder   string
	store    Store
	notifier Notifier
}

// NewFolderStore wraps store for the given base folder. notifier may be nil.
func NewFolderStore(folder string, store Store, notifier Notifier) *FolderStore {
	return &FolderStore{
		folder:   folder,
		store:    store,
		notifier: notifier,
	}
}

// Folder returns the base folder.
func (s *FolderStore) Folder() string {
	return s.folder
}

// Unwrap returns the decorated store.
func (s *FolderStore) Unwrap() Store {
	return s.store
}

func (s *FolderStore) Separator() rune {
	return s.store.Separator()
}

func (s *FolderStore) MakeDirectories(ctx context.Context, path string) bool {
	s.ensureFolder(ctx)
	return s.store.MakeDirectories(ctx, path)
}

func (s *FolderStore) Size(ctx context.Context, path string) (int64, error) {
	s.ensureFolder(ctx)
	return s.store.Size(ctx, path)
}

func (s *FolderStore) Write(ctx context.Context, path string, position int64, contents string) error {
	s.ensureFolder(ctx)
	return s.store.Write(ctx, path, position, contents)
}

func (s *FolderStore) Append(ctx context.Context, path string, contents string) error {
	s.ensureFolder(ctx)
	return s.store.Append(ctx, path, contents)
}

func (s *FolderStore) Ensure(ctx context.Context, path string) error {
	s.ensureFolder(ctx)
	return s.store.Ensure(ctx, path)
}

func (s *FolderStore) Delete(ctx context.Context, path string) error {
	s.ensureFolder(ctx)
	return s.store.Delete(ctx, path)
}

func (s *FolderStore) Files(ctx context.Context, dir string) ([]string, error) {
	s.ensureFolder(ctx)
	return s.store.Files(ctx, dir)
}

func (s *FolderStore) FilesAfter(ctx context.Context, dir string, date logdate.Date) ([]string, error) {
	s.ensureFolder(ctx)
	return s.store.FilesAfter(ctx, dir, date)
}

func (s *FolderStore) ensureFolder(ctx context.Context) {
	if s.store.MakeDirectories(ctx, s.folder) {
		return
	}
	if s.notifier != nil {
		s.notifier.OnLogFolderInvalid(s.folder)
	}
}

// Compile-time interface satisfaction check.
var _ Store = (*FolderStore)(nil)
