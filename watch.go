package kinetic

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SheetWatcher watches directories for sheet edits so demos and tools can
// reload animations live. Events carries the paths of changed .yaml/.yml
// files, debounced per path; Errors carries watcher failures.
type SheetWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// sheetDebounce suppresses duplicate events for the same path; editors
// commonly emit several writes per save.
const sheetDebounce = 100 * time.Millisecond

// NewSheetWatcher starts watching the given directories.
func NewSheetWatcher(dirs ...string) (*SheetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	sw := &SheetWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher. Idempotent. Events and Errors are closed by the
// watch goroutine once it has finished sending, so a consumer ranging over
// Events terminates cleanly.
func (sw *SheetWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
	})
	return err
}

// run owns the Events/Errors channels: only this goroutine sends on them and
// it closes them on exit, so Close can never race a send.
func (sw *SheetWatcher) run() {
	defer close(sw.Errors)
	defer close(sw.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSheetFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < sheetDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case sw.Events <- event.Name:
			case <-sw.closeCh:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case sw.Errors <- err:
			case <-sw.closeCh:
				return
			}
		case <-sw.closeCh:
			return
		}
	}
}

// isSheetFile reports whether path looks like a YAML sheet.
func isSheetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
