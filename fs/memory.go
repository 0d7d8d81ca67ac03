package fs

import "io"

var _ Source = &MemSource{}

// MemSource is a Source over a contiguous in-memory byte range.
//
// The backing slice is either owned or borrowed, decided at construction
// and fixed for the life of the source. Ownership only affects Close:
// an owned buffer is released for collection, a borrowed one stays the
// caller's responsibility. Read and seek semantics are identical in both
// modes.
type MemSource struct {
	data  []byte
	off   int64
	owned bool
}

// NewMemSource returns a MemSource that takes ownership of data. The
// caller must not retain or modify the slice afterwards.
func NewMemSource(data []byte) *MemSource {
	return &MemSource{data: data, owned: true}
}

// NewMemSourceView returns a MemSource over caller-managed memory. The
// caller keeps the slice alive for the life of the source; Close never
// touches it.
func NewMemSourceView(data []byte) *MemSource {
	return &MemSource{data: data}
}

func (m *MemSource) Read(p []byte) (int, error) {
	remaining := int64(len(m.data)) - m.off
	if remaining <= 0 {
		return 0, io.EOF
	}

	n := int64(len(p))
	if n > remaining {
		n = remaining
	}

	copy(p, m.data[m.off:m.off+n])
	m.off += n

	return int(n), nil
}

func (m *MemSource) Seek(offset int64, whence int) (int64, error) {
	target, err := seekTarget(offset, m.off, int64(len(m.data)), whence)
	if err != nil {
		return m.off, err
	}

	m.off = target
	return m.off, nil
}

func (m *MemSource) Tell() int64 {
	return m.off
}

func (m *MemSource) Size() int64 {
	return int64(len(m.data))
}

// Close releases the backing buffer when the source owns it. Borrowed
// buffers are left untouched.
func (m *MemSource) Close() error {
	if m.owned {
		m.data = nil
	}
	return nil
}
