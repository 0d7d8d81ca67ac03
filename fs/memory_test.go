package fs

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemSourceRoundTrip(t *testing.T) {
	require := require.New(t)

	data := []byte("the quick brown fox jumps over the lazy dog")
	src := NewMemSource(append([]byte(nil), data...))
	defer src.Close()

	require.Equal(int64(0), src.Tell())
	require.Equal(int64(len(data)), src.Size())

	// Read the whole range back with uneven chunk sizes.
	var got []byte
	for _, chunk := range []int{1, 2, 7, 3, 1024} {
		buf := make([]byte, chunk)
		n, err := src.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(err)
		got = append(got, buf[:n]...)
	}

	require.Equal(data, got)
	require.Equal(int64(len(data)), src.Tell())

	// Reading at end of data reports EOF.
	n, err := src.Read(make([]byte, 1))
	require.Equal(0, n)
	require.Equal(io.EOF, err)
}

func TestMemSourceSeek(t *testing.T) {
	require := require.New(t)

	src := NewMemSource([]byte("0123456789"))
	defer src.Close()

	// Absolute seek.
	off, err := src.Seek(4, io.SeekStart)
	require.NoError(err)
	require.Equal(int64(4), off)

	// Relative seek.
	off, err = src.Seek(2, io.SeekCurrent)
	require.NoError(err)
	require.Equal(int64(6), off)

	// End-relative seeks clamp to at most size.
	off, err = src.Seek(5, io.SeekEnd)
	require.NoError(err)
	require.Equal(int64(10), off)

	off, err = src.Seek(-3, io.SeekEnd)
	require.NoError(err)
	require.Equal(int64(7), off)

	// Start/current-relative seeks do not clamp above size.
	off, err = src.Seek(15, io.SeekStart)
	require.NoError(err)
	require.Equal(int64(15), off)

	_, err = src.Read(make([]byte, 1))
	require.Equal(io.EOF, err)

	// Negative offsets are rejected and leave the cursor unchanged.
	_, err = src.Seek(-1, io.SeekStart)
	require.ErrorIs(err, ErrInvalidSeek)
	require.Equal(int64(15), src.Tell())

	_, err = src.Seek(-20, io.SeekCurrent)
	require.ErrorIs(err, ErrInvalidSeek)

	_, err = src.Seek(-11, io.SeekEnd)
	require.ErrorIs(err, ErrInvalidSeek)
}

func TestMemSourceOwnership(t *testing.T) {
	require := require.New(t)

	// A view never touches the caller's slice.
	buf := []byte("caller data")
	view := NewMemSourceView(buf)
	require.NoError(view.Close())
	require.Equal([]byte("caller data"), buf)

	// An owned buffer is released on close.
	owned := NewMemSource([]byte("owned data"))
	require.NoError(owned.Close())
	require.Equal(int64(0), owned.Size())
}
