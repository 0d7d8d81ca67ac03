package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
	"github.com/rs/zerolog/log"
)

var _ Provider = &Archive{}

// Archive resolves logical paths to entries inside an archive container.
// The container format is chosen from the file extension: ".rar" and
// ".7z" are handled by their decoders, anything else is treated as zip.
//
// Resolution always decodes the whole entry eagerly into an owned buffer;
// there is no streaming or partial decode. A decode failure is reported
// as a miss, never as partial bytes.
type Archive struct {
	path string

	// Zip central directories are cheap to keep open, so the parsed
	// reader is cached across resolves and dropped when the container
	// changes on disk. Rar and 7z containers are re-read per resolve.
	mu  sync.Mutex
	zip *zipIndex
}

type zipIndex struct {
	rc      *zip.ReadCloser
	entries map[string]*zip.File
	size    int64
	modTime time.Time
}

// NewArchive creates a provider for the archive container at path. The
// container is not opened until the first Resolve call.
func NewArchive(path string) *Archive {
	return &Archive{path: path}
}

// Resolve looks the logical path up as an entry name in the container and
// returns its fully decoded contents as an owned MemSource.
func (a *Archive) Resolve(name string) (Source, error) {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(a.path)) {
	case ".rar":
		data, err = a.extractRar(name)
	case ".7z":
		data, err = a.extract7z(name)
	default:
		data, err = a.extractZip(name)
	}

	if err != nil {
		log.Debug().
			Str("archive", a.path).
			Str("entry", name).
			Err(err).
			Msg("fs: archive provider miss")
		return nil, err
	}

	log.Debug().
		Str("archive", a.path).
		Str("entry", name).
		Int("size", len(data)).
		Msg("fs: archive provider hit")

	return NewMemSource(data), nil
}

// Close drops the cached container state, if any.
func (a *Archive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.zip == nil {
		return nil
	}

	err := a.zip.rc.Close()
	a.zip = nil
	return err
}

func (a *Archive) extractZip(name string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, err := a.zipReader()
	if err != nil {
		return nil, err
	}

	entry, ok := idx.entries[name]
	if !ok {
		return nil, fmt.Errorf("no entry %q in %s", name, a.path)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data := make([]byte, entry.UncompressedSize64)
	if _, err := io.ReadFull(rc, data); err != nil {
		return nil, err
	}

	return data, nil
}

// zipReader returns the cached central directory, re-reading it when the
// container's size or mtime has changed since it was parsed.
func (a *Archive) zipReader() (*zipIndex, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, err
	}

	if a.zip != nil {
		if a.zip.size == info.Size() && a.zip.modTime.Equal(info.ModTime()) {
			return a.zip, nil
		}

		if err := a.zip.rc.Close(); err != nil {
			log.Debug().
				Str("archive", a.path).
				Err(err).
				Msg("fs: closing stale zip reader")
		}
		a.zip = nil
	}

	rc, err := zip.OpenReader(a.path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		entries[f.Name] = f
	}

	a.zip = &zipIndex{
		rc:      rc,
		entries: entries,
		size:    info.Size(),
		modTime: info.ModTime(),
	}

	log.Debug().
		Str("archive", a.path).
		Int("entries", len(entries)).
		Msg("fs: zip index loaded")

	return a.zip, nil
}

func (a *Archive) extractRar(name string) ([]byte, error) {
	r, err := rardecode.OpenReader(a.path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for {
		h, err := r.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("no entry %q in %s", name, a.path)
		}
		if err != nil {
			return nil, err
		}

		if h.IsDir || h.Name != name {
			continue
		}

		return io.ReadAll(r)
	}
}

func (a *Archive) extract7z(name string) ([]byte, error) {
	r, err := sevenzip.OpenReader(a.path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name || f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(rc)
		if cerr := rc.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, err
		}

		return data, nil
	}

	return nil, fmt.Errorf("no entry %q in %s", name, a.path)
}
