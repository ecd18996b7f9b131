package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event represents a watched file change.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created. Editors that save
	// through a temporary file and a rename report their saves as
	// creations.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

const eventBufferSize = 16

// Watcher reports changes to individual files. The parent directory of
// each file is watched rather than the file itself, so saves that
// replace the file through a rename keep being reported, and a file may
// be watched before it exists.
type Watcher struct {
	mu    sync.Mutex
	fw    *fsnotify.Watcher
	files map[string]bool
	dirs  map[string]int

	debounce time.Duration

	events chan Event
	errs   chan error

	closeCh chan struct{}
	closeWg sync.WaitGroup
	closed  bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period collapsing bursts of changes into
// a single event. Zero disables debouncing.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher with no files under watch.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		debounce: 100 * time.Millisecond,
		events:   make(chan Event, eventBufferSize),
		errs:     make(chan error, eventBufferSize),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closeWg.Add(1)
	go w.loop()

	return w, nil
}

// Watch adds a file to the watch list. The file itself need not exist,
// but its directory must. Watching a path twice is a no-op.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch removes a file from the watch list. Unwatching a path that is
// not watched is a no-op.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[abs] {
		return nil
	}

	delete(w.files, abs)
	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fw.Remove(dir); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", dir, err)
		}
	}
	return nil
}

// WatchedFiles returns the watched paths.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes both channels. Closing twice is a
// no-op.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closeWg.Wait()
	close(w.events)
	close(w.errs)

	return w.fw.Close()
}

// loop drains fsnotify, filters to watched files and debounces.
func (w *Watcher) loop() {
	defer w.closeWg.Done()

	var (
		pending map[string]Event
		timerC  <-chan time.Time
	)

	for {
		select {
		case <-w.closeCh:
			return

		case fe, ok := <-w.fw.Events:
			if !ok {
				return
			}
			ev, ok := w.translate(fe)
			if !ok {
				continue
			}
			if w.debounce <= 0 {
				w.send(ev)
				continue
			}
			if pending == nil {
				pending = make(map[string]Event)
			}
			if prev, ok := pending[ev.Path]; ok {
				ev = coalesce(prev, ev)
			}
			pending[ev.Path] = ev
			timerC = time.After(w.debounce)

		case <-timerC:
			for _, ev := range pending {
				w.send(ev)
			}
			pending = nil
			timerC = nil

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// translate converts an fsnotify event, reporting whether it concerns a
// watched file.
func (w *Watcher) translate(fe fsnotify.Event) (Event, bool) {
	path := filepath.Clean(fe.Name)

	w.mu.Lock()
	watched := w.files[path]
	w.mu.Unlock()
	if !watched {
		return Event{}, false
	}

	op, ok := convertOp(fe.Op)
	if !ok {
		return Event{}, false
	}
	return Event{Path: path, Op: op, Time: time.Now()}, true
}

// convertOp maps an fsnotify operation. Chmod is dropped.
func convertOp(fsOp fsnotify.Op) (Operation, bool) {
	switch {
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	}
	return 0, false
}

// coalesce merges a new event into a pending one for the same path.
// Remove takes precedence, and a write does not override a pending
// create or remove. The newest time is kept in every case.
func coalesce(prev, next Event) Event {
	switch next.Op {
	case OpRemove:
		return next
	case OpWrite:
		if prev.Op != OpWrite {
			return Event{Path: prev.Path, Op: prev.Op, Time: next.Time}
		}
	}
	return next
}

// send delivers an event without blocking the loop. A full channel
// drops the event; consumers reload from the file on every event, so
// the latest state is never lost.
func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
