package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it changes on disk and
// delivers the fresh config on Events. The file's directory is watched
// rather than the file itself, since editors replace files by rename.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string

	Events chan *Config
	Errors chan error
	done   chan struct{}
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(path),
		Events:    make(chan *Config, 8),
		Errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// watchLoop handles fsnotify events
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Error channel full, drop
			}
		}
	}
}

// handleFSEvent reloads the config when the watched file is written,
// created or renamed into place. Other files in the directory are
// ignored.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}

	select {
	case w.Events <- cfg:
	default:
		// Event channel full; a later event will carry a fresher config
	}
}
