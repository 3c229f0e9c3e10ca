package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentWatcher reloads a content document when its file changes and
// delivers the parsed result on Updates. Invalid edits are reported on
// Errors and the previous content stays in use.
type ContentWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *Content
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchContent watches the directory containing path. Editors often replace
// files instead of writing them, so the directory is watched rather than the
// file itself.
func WatchContent(path string) (*ContentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ContentWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan *Content, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (w *ContentWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

// contentDebounce is how long the file must stay quiet before it is parsed.
const contentDebounce = 100 * time.Millisecond

func (w *ContentWatcher) run() {
	defer close(w.done)
	quiet := time.NewTimer(contentDebounce)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Every write pushes the reload back, so a file written in
			// several chunks is parsed once, after the last one.
			quiet.Reset(contentDebounce)
		case <-quiet.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *ContentWatcher) reload() {
	c, err := LoadContent(w.path)
	if err != nil {
		w.report(err)
		return
	}
	log.Printf("[Config] reloaded content from %s", w.path)
	// Keep only the newest document if the loop has not picked up the last one.
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- c:
	case <-w.closeCh:
	}
}

func (w *ContentWatcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
		log.Printf("[Config] dropped watcher error: %v", err)
	}
}
