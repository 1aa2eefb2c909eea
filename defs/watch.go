package defs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Update is one change notification from a Watcher. Err is set when the
// underlying filesystem watcher failed instead of reporting a change.
type Update struct {
	Name string
	Err  error
}

// Watcher reports edits to def files and curve scripts under the
// watched directories. Editors fire several events per save, so changes
// are coalesced and each save surfaces as a single Update.
type Watcher struct {
	fs *fsnotify.Watcher

	// Updates never closes; poll it with a select default from the
	// game loop. Updates that arrive while the buffer is full are
	// dropped, and the next save produces a fresh one.
	Updates chan Update

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer

	done chan struct{}
	once sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Updates: make(chan Update, 16),
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. Pending debounced updates are discarded.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !watchable(event.Name) {
				continue
			}
			w.mark(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.deliver(Update{Err: err})
		case <-w.done:
			return
		}
	}
}

// mark schedules a flush; repeat events for the same save fold into it.
func (w *Watcher) mark(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[name] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(debounceWindow, w.flush)
		return
	}
	w.timer.Reset(debounceWindow)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	names := make([]string, 0, len(w.pending))
	for n := range w.pending {
		names = append(names, n)
	}
	clear(w.pending)
	w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}
	for _, n := range names {
		w.deliver(Update{Name: n})
	}
}

func (w *Watcher) deliver(u Update) {
	select {
	case w.Updates <- u:
	default:
	}
}

// watchable reports whether the path is a def file or a curve script.
func watchable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
