package fs

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

var _ Source = &FileSource{}

// FileSource is a Source over an open host file.
//
// The total size is determined once at construction and cached; the file
// must not be truncated or appended to externally while the source is
// alive.
type FileSource struct {
	f    *os.File
	size int64
}

// NewFileSource wraps an open file. The source takes ownership of the
// handle and rewinds it to the start. On error the handle is left open
// and owned by the caller.
func NewFileSource(f *os.File) (*FileSource, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return &FileSource{f: f, size: size}, nil
}

func (s *FileSource) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

func (s *FileSource) Seek(offset int64, whence int) (int64, error) {
	target, err := seekTarget(offset, s.Tell(), s.size, whence)
	if err != nil {
		return s.Tell(), err
	}

	return s.f.Seek(target, io.SeekStart)
}

func (s *FileSource) Tell() int64 {
	off, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		log.Debug().
			Str("file", s.f.Name()).
			Err(err).
			Msg("fs: querying file position")
	}
	return off
}

func (s *FileSource) Size() int64 {
	return s.size
}

func (s *FileSource) Close() error {
	return s.f.Close()
}
