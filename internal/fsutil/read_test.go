package fsutil

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/specialistvlad/minigrep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextFile_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := testutil.WriteFile(t, "poem.txt", "I'm nobody! Who are you?\nAre you nobody, too?\n")

	// --- Act ---
	contents, err := ReadTextFile(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "I'm nobody! Who are you?\nAre you nobody, too?\n", contents)
}

func TestReadTextFile_EmptyFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "empty.txt", "")

	contents, err := ReadTextFile(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestReadTextFile_MissingFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	// --- Act ---
	_, err := ReadTextFile(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "Error reading \""+path+"\": ")
}

func TestReadTextFile_PermissionDenied(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}

	// --- Arrange ---
	path := testutil.WriteFile(t, "secret.txt", "hidden")
	require.NoError(t, os.Chmod(path, 0000))

	// --- Act ---
	_, err := ReadTextFile(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), path)
}

func TestReadTextFile_InvalidUTF8(t *testing.T) {
	t.Parallel()

	path := testutil.WriteBytes(t, "binary.dat", []byte{'o', 'k', '\n', 0xff, 0xfe})

	contents, err := ReadTextFile(context.Background(), path)

	require.Error(t, err)
	assert.Empty(t, contents)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "stream did not contain valid UTF-8")
}

func TestReadTextFile_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := ReadTextFile(context.Background(), dir)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, dir, readErr.Path)
}
