// Package notify watches the served dataset file and triggers reloads
// when it changes on disk.
package notify

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file and invokes a callback after it has
// been written. Events are debounced: editors and spreadsheet exports
// tend to produce several writes per save.
type FileWatcher struct {
	path     string
	callback func()
	debounce time.Duration
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewFileWatcher creates a watcher for path. The callback runs on the
// watcher goroutine once the debounce window after the last write has
// passed.
func NewFileWatcher(path string, callback func()) *FileWatcher {
	return &FileWatcher{
		path:     filepath.Clean(path),
		callback: callback,
		debounce: 250 * time.Millisecond,
		done:     make(chan struct{}),
	}
}

// Start begins watching. The parent directory is watched rather than
// the file itself so atomic rename-over saves keep working. Call
// Stop() to clean up.
func (fw *FileWatcher) Start() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(fw.path)); err != nil {
		_ = w.Close()
		return err
	}
	fw.watcher = w

	go fw.loop()
	log.Printf("notify: watching %s for dataset changes", fw.path)
	return nil
}

// Stop shuts down the watcher.
func (fw *FileWatcher) Stop() {
	if fw.watcher != nil {
		_ = fw.watcher.Close()
	}
	<-fw.done
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case evt, ok := <-fw.watcher.Events:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return
			}
			if filepath.Clean(evt.Name) != fw.path {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
				timerC = timer.C
			} else {
				timer.Reset(fw.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			fw.callback()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return
			}
			log.Printf("notify: watcher error: %v", err)
		}
	}
}
