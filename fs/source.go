package fs

import "io"

// Source is the minimal contract every backend exposes: a seekable,
// fixed-size byte stream with an explicit cursor.
//
// Read copies up to len(p) bytes from the current offset and advances the
// cursor by the amount copied. A short count is only returned at end of
// data; reading at end of data returns io.EOF.
//
// Seek repositions the cursor using the io.SeekStart, io.SeekCurrent and
// io.SeekEnd whence values. End-relative seeks clamp the result to at most
// Size; start- and current-relative seeks may position the cursor past the
// end (a later Read just hits EOF). Any seek that would produce a negative
// offset fails with ErrInvalidSeek and leaves the cursor unchanged.
//
// Size is fixed at construction and never changes for the life of the
// source.
type Source interface {
	io.Reader
	io.Seeker
	io.Closer

	// Tell returns the current cursor position.
	Tell() int64

	// Size returns the total number of bytes in the source.
	Size() int64
}

// seekTarget computes the absolute offset for a seek request against a
// source of the given size, applying the end-relative clamp and rejecting
// negative results.
func seekTarget(offset, cur, size int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = cur + offset
	case io.SeekEnd:
		target = size + offset
		if target > size {
			target = size
		}
	default:
		return 0, errWhence(whence)
	}

	if target < 0 {
		return 0, errNegativeSeek(target)
	}

	return target, nil
}
