package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file when it changes on disk and hands the
// fresh Settings to a callback. Editors keep one per session so dialect
// tweaks take effect without a restart.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	path    string
	onLoad  func(Settings)
	onError func(error)
	closed  bool
	done    chan struct{}
}

// WatchSettings starts watching path. onLoad is invoked with the reloaded
// settings after every write to the file; onError (optional) receives
// watch and parse failures.
func WatchSettings(path string, onLoad func(Settings), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    filepath.Clean(path),
		onLoad:  onLoad,
		onError: onError,
		done:    make(chan struct{}),
	}

	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				w.reportError(err)
				continue
			}
			w.onLoad(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.watcher.Close()
	<-w.done
	return err
}
