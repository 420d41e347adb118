package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/specialistvlad/minigrep/internal/ctxlog"
)

// ErrInvalidUTF8 is reported when a file's bytes are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError describes a file that could not be loaded as text.
type FileReadError struct {
	Path string
	Err  error
}

// Error implements the error interface for FileReadError.
func (e *FileReadError) Error() string {
	return fmt.Sprintf("Error reading \"%s\": %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ReadTextFile reads the whole of path and returns it as a string.
func ReadTextFile(ctx context.Context, path string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		// The path is already part of FileReadError, so only the OS reason is kept.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		logger.Debug("File read failed.", "path", path, "error", err)
		return "", &FileReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		logger.Debug("File is not valid UTF-8.", "path", path, "bytes", len(data))
		return "", &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}

	logger.Debug("File read successfully.", "path", path, "bytes", len(data))
	return string(data), nil
}
