package fs

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func memFile(contents string) *File {
	return NewFile(NewMemSource([]byte(contents)))
}

func TestReadAll(t *testing.T) {
	require := require.New(t)

	f := memFile("hello world")
	defer f.Close()

	data, err := f.ReadAll()
	require.NoError(err)
	require.Equal("hello world", string(data))
	require.True(f.EOF())
}

func TestReadAllEmpty(t *testing.T) {
	require := require.New(t)

	f := memFile("")
	defer f.Close()

	// A zero-byte source yields an empty result, not an error.
	data, err := f.ReadAll()
	require.NoError(err)
	require.Empty(data)
	require.True(f.EOF())
}

func TestReadLine(t *testing.T) {
	require := require.New(t)

	f := memFile("abc\r\ndef")
	defer f.Close()

	buf := make([]byte, 64)

	// CR and LF are stripped and not stored.
	n, err := f.ReadLine(buf)
	require.NoError(err)
	require.Equal(3, n)
	require.Equal("abc", string(buf[:n]))

	// The cursor is left at the start of the next line.
	require.Equal(int64(5), f.Tell())

	// The final unterminated line is still returned.
	n, err = f.ReadLine(buf)
	require.NoError(err)
	require.Equal("def", string(buf[:n]))
	require.True(f.EOF())

	// Reading past the end reports EOF.
	n, err = f.ReadLine(buf)
	require.Equal(0, n)
	require.Equal(io.EOF, err)
}

func TestReadLineMaxChars(t *testing.T) {
	require := require.New(t)

	f := memFile("abcdefgh\n")
	defer f.Close()

	// Only len(buf) bytes are examined.
	buf := make([]byte, 4)
	n, err := f.ReadLine(buf)
	require.NoError(err)
	require.Equal("abcd", string(buf[:n]))
	require.Equal(int64(4), f.Tell())
}

func TestGetAndPeek(t *testing.T) {
	require := require.New(t)

	f := memFile("xy")
	defer f.Close()

	// Peek twice returns the same byte and never advances the cursor.
	b, err := f.Peek()
	require.NoError(err)
	require.Equal(byte('x'), b)

	b, err = f.Peek()
	require.NoError(err)
	require.Equal(byte('x'), b)
	require.Equal(int64(0), f.Tell())

	// Get consumes.
	b, err = f.Get()
	require.NoError(err)
	require.Equal(byte('x'), b)

	b, err = f.Get()
	require.NoError(err)
	require.Equal(byte('y'), b)
	require.True(f.EOF())

	_, err = f.Get()
	require.Equal(io.EOF, err)
}

func TestEOFAtEnd(t *testing.T) {
	require := require.New(t)

	f := memFile("0123456789")
	defer f.Close()

	require.False(f.EOF())

	// Seeking to the end reaches EOF without a failed read.
	_, err := f.Seek(0, io.SeekEnd)
	require.NoError(err)
	require.True(f.EOF())

	// Seeking past the end from End clamps to size.
	off, err := f.Seek(7, io.SeekEnd)
	require.NoError(err)
	require.Equal(int64(10), off)
	require.True(f.EOF())
}

func TestFileClose(t *testing.T) {
	require := require.New(t)

	f := memFile("data")
	require.NoError(f.Close())

	// Closing twice is a no-op.
	require.NoError(f.Close())

	// A closed cursor rejects further use.
	_, err := f.Read(make([]byte, 1))
	require.ErrorIs(err, ErrClosed)

	_, err = f.ReadAll()
	require.ErrorIs(err, ErrClosed)

	require.True(f.EOF())
	require.Equal(int64(0), f.Size())
}
