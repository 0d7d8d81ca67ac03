package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher invokes a callback whenever the configuration file is rewritten,
// so a long-lived embedder can rebuild its provider chain.
type Watcher struct {
	w *fsnotify.Watcher
}

// Watch starts watching the configuration file. The callback runs on the
// watcher goroutine; it must not block for long.
func Watch(path string, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory rather than the file itself: editors
	// that save via rename-replace would otherwise silently drop the
	// watch together with the old inode.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != target {
					continue
				}

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					log.Debug().
						Str("path", event.Name).
						Str("op", event.Op.String()).
						Msg("config: file changed")
					onChange()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("config: watcher error")
			}
		}
	}()

	return &Watcher{w: w}, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}
