package fs

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Provider resolves a logical path to a Source. A provider that cannot
// serve the path returns an error; FS.Open treats any error as "not here,
// try the next provider" and never surfaces it individually.
//
// Providers carry immutable configuration set at construction and keep no
// per-call state: Resolve may be called concurrently.
type Provider interface {
	Resolve(name string) (Source, error)
}

var _ Provider = &Dir{}

// Dir resolves logical paths against a root directory on the host
// filesystem.
type Dir struct {
	root string
}

// NewDir creates a provider rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Resolve joins the logical path to the root with a single separator and
// opens it as a native file. No path normalization is applied. Missing
// files and permission errors are indistinguishable to the caller.
func (d *Dir) Resolve(name string) (Source, error) {
	full := d.root + "/" + name

	f, err := os.Open(full)
	if err != nil {
		log.Debug().
			Str("path", full).
			Err(err).
			Msg("fs: dir provider miss")
		return nil, err
	}

	src, err := NewFileSource(f)
	if err != nil {
		f.Close()
		log.Debug().
			Str("path", full).
			Err(err).
			Msg("fs: dir provider failed to size file")
		return nil, err
	}

	log.Debug().
		Str("path", full).
		Int64("size", src.Size()).
		Msg("fs: dir provider hit")

	return src, nil
}
