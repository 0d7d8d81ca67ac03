package fs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by FS.Open when no provider resolves the
	// requested path. Match it with errors.Is.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidSeek is returned by Seek when the requested offset would
	// move the cursor before the start of the source.
	ErrInvalidSeek = errors.New("invalid seek offset")

	// ErrClosed is returned when operating on a closed cursor.
	ErrClosed = errors.New("file already closed")
)

// NotFoundError carries the path that no provider could resolve.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func errNegativeSeek(target int64) error {
	return fmt.Errorf("%w: %d", ErrInvalidSeek, target)
}

func errWhence(whence int) error {
	return fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
}
