// Package fs implements a layered virtual file-access layer. Callers open
// files by logical path without knowing whether the bytes live on disk,
// inside an archive container, or in a memory buffer; an ordered chain of
// providers resolves each path to a concrete readable stream.
package fs

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// FS is a virtual filesystem backed by an ordered list of providers.
// Insertion order is priority order: Open returns the first successful
// resolution and never consults later providers.
//
// The provider list is safe to share across concurrent Open calls as long
// as no provider is added while an Open is in flight.
type FS struct {
	providers []Provider
}

// New creates an empty filesystem. Every Open fails until a provider is
// added.
func New() *FS {
	return &FS{}
}

// NewFromRoot creates a filesystem with a single directory provider.
func NewFromRoot(root string) *FS {
	v := New()
	v.AddProvider(NewDir(root))
	return v
}

// NewFromRoots creates a filesystem with one directory provider per root,
// in list order. The first root has the highest priority.
func NewFromRoots(roots []string) *FS {
	v := New()
	for _, root := range roots {
		v.AddProvider(NewDir(root))
	}
	return v
}

// AddProvider appends a provider to the end of the chain, giving it the
// lowest priority. Providers are never removed.
func (v *FS) AddProvider(p Provider) {
	v.providers = append(v.providers, p)
}

// Open resolves the logical path through the provider chain and wraps the
// first successful source in a cursor. Each call produces an independent
// cursor; nothing is cached or shared between opens of the same path.
//
// Provider misses are swallowed; if no provider resolves the path the
// error matches ErrNotFound and carries the requested path.
func (v *FS) Open(name string) (*File, error) {
	for _, p := range v.providers {
		src, err := p.Resolve(name)
		if err != nil {
			continue
		}
		return NewFile(src), nil
	}

	log.Debug().
		Str("path", name).
		Int("providers", len(v.providers)).
		Msg("fs: open failed on all providers")

	return nil, &NotFoundError{Path: name}
}

// Close releases any provider that holds resources, such as a cached
// archive reader. The filesystem must not be used afterwards.
func (v *FS) Close() error {
	var errs []error
	for _, p := range v.providers {
		if c, ok := p.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
