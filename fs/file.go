package fs

import "io"

// File is the caller-facing cursor over a Source, adding line- and
// byte-oriented convenience reads on top of the raw contract.
//
// A File is the exclusive owner of its source: FS.Open produces exactly
// one cursor per resolved source, and Close releases it. A closed File
// must not be used again.
type File struct {
	src Source
}

// NewFile wraps a source in a cursor, transferring ownership. Useful for
// reading caller-managed memory through the File API:
//
//	f := fs.NewFile(fs.NewMemSourceView(buf))
func NewFile(src Source) *File {
	return &File{src: src}
}

// ReadAll reads the whole source in a single read starting at the current
// cursor position. A zero-byte source yields an empty slice, not an
// error.
//
// A single read is sufficient because both memory and native sources
// return all available bytes up to the request in one call.
func (f *File) ReadAll() ([]byte, error) {
	if f.src == nil {
		return nil, ErrClosed
	}

	buf := make([]byte, f.src.Size())
	if len(buf) == 0 {
		return buf, nil
	}

	n, err := f.src.Read(buf)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return buf[:n], nil
}

// Read copies up to len(p) bytes into p from the current position and
// returns the number of bytes read. io.EOF is returned at end of data.
func (f *File) Read(p []byte) (int, error) {
	if f.src == nil {
		return 0, ErrClosed
	}
	return f.src.Read(p)
}

// ReadLine reads bytes into buf until a '\n' is consumed or len(buf)
// bytes have been examined. Carriage returns and the newline itself are
// stripped and not stored. Returns the number of stored bytes.
//
// Reads are byte-at-a-time on purpose: correctness over throughput for
// line-oriented text.
func (f *File) ReadLine(buf []byte) (int, error) {
	stored := 0
	for count := len(buf); count > 0; count-- {
		c, err := f.Get()
		if err != nil {
			if err == io.EOF && stored > 0 {
				return stored, nil
			}
			return stored, err
		}

		if c == '\n' {
			break
		}
		if c == '\r' {
			continue
		}

		buf[stored] = c
		stored++
	}

	return stored, nil
}

// Get reads and returns exactly one byte. At end of data it returns 0 and
// io.EOF.
func (f *File) Get() (byte, error) {
	if f.src == nil {
		return 0, ErrClosed
	}

	var b [1]byte
	n, err := f.src.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	return b[0], nil
}

// Peek returns the next byte without advancing the cursor.
func (f *File) Peek() (byte, error) {
	c, err := f.Get()
	if err != nil {
		return 0, err
	}

	if _, err := f.Seek(-1, io.SeekCurrent); err != nil {
		return 0, err
	}

	return c, nil
}

// Seek repositions the cursor. See Source for the whence semantics.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.src == nil {
		return 0, ErrClosed
	}
	return f.src.Seek(offset, whence)
}

// Tell returns the current cursor position.
func (f *File) Tell() int64 {
	if f.src == nil {
		return 0
	}
	return f.src.Tell()
}

// Size returns the total size of the underlying source.
func (f *File) Size() int64 {
	if f.src == nil {
		return 0
	}
	return f.src.Size()
}

// EOF reports whether the cursor has consumed every byte. It is true at
// the end, not past it: a cursor positioned exactly at Size is at EOF
// even if no read has failed yet.
func (f *File) EOF() bool {
	if f.src == nil {
		return true
	}
	return f.src.Tell() == f.src.Size()
}

// Close releases the underlying source. Closing twice is a no-op.
func (f *File) Close() error {
	if f.src == nil {
		return nil
	}

	err := f.src.Close()
	f.src = nil
	return err
}
