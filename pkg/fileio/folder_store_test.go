package fileio_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dailylog/dailylog/pkg/fileio"
	"github.com/dailylog/dailylog/pkg/fileio/mocks"
)

func TestFolderStoreRecreatesFolder(t *testing.T) {
	ctx := context.Background()
	folder := filepath.Join(t.TempDir(), "logs")
	store := fileio.NewFolderStore(folder, fileio.NewOSStore(), nil)

	path := filepath.Join(folder, "2024-03-07.log")
	require.NoError(t, store.Append(ctx, path, "one\n"))

	// The host wipes the folder; the next write brings it back.
	require.NoError(t, os.RemoveAll(folder))
	require.NoError(t, store.Append(ctx, path, "two\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(data))
}

func TestFolderStoreReportsInvalidFolder(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockStore(t)
	notifier := mocks.NewMockNotifier(t)

	inner.EXPECT().MakeDirectories(mock.Anything, "/logs").Return(false).Once()
	inner.EXPECT().Append(mock.Anything, "/logs/2024-03-07.log", "line\n").Return(errors.New("no such directory")).Once()
	notifier.EXPECT().OnLogFolderInvalid("/logs").Return().Once()

	store := fileio.NewFolderStore("/logs", inner, notifier)
	err := store.Append(ctx, "/logs/2024-03-07.log", "line\n")
	assert.Error(t, err)
}

func TestFolderStoreDelegates(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockStore(t)

	inner.EXPECT().MakeDirectories(mock.Anything, "/logs").Return(true)
	inner.EXPECT().Separator().Return('/')
	inner.EXPECT().Size(mock.Anything, "/logs/a.json").Return(int64(2), nil).Once()
	inner.EXPECT().Write(mock.Anything, "/logs/a.json", int64(-1), "{}]").Return(nil).Once()
	inner.EXPECT().Files(mock.Anything, "/logs").Return([]string{"/logs/a.json"}, nil).Once()

	store := fileio.NewFolderStore("/logs", inner, nil)

	assert.Equal(t, '/', store.Separator())
	size, err := store.Size(ctx, "/logs/a.json")
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)
	require.NoError(t, store.Write(ctx, "/logs/a.json", -1, "{}]"))

	files, err := store.Files(ctx, "/logs")
	require.NoError(t, err)
	assert.Equal(t, []string{"/logs/a.json"}, files)
	assert.Same(t, inner, store.Unwrap())
	assert.Equal(t, "/logs", store.Folder())
}

func TestNotifierFuncs(t *testing.T) {
	var opened, closed, invalid, failed []string

	n := fileio.NotifierFuncs{
		Opened:        func(p string) { opened = append(opened, p) },
		Closed:        func(p string) { closed = append(closed, p) },
		FolderInvalid: func(p string) { invalid = append(invalid, p) },
		WriteFailed:   func(p string, err error) { failed = append(failed, p+": "+err.Error()) },
	}

	n.OnLogFileOpened("a")
	n.OnLogFileClosed("b")
	n.OnLogFolderInvalid("c")
	n.OnWriteFailed("d", errors.New("boom"))

	assert.Equal(t, []string{"a"}, opened)
	assert.Equal(t, []string{"b"}, closed)
	assert.Equal(t, []string{"c"}, invalid)
	assert.Equal(t, []string{"d: boom"}, failed)

	// Zero value ignores everything.
	var empty fileio.NotifierFuncs
	empty.OnLogFileOpened("x")
	empty.OnWriteFailed("x", errors.New("ignored"))
}
