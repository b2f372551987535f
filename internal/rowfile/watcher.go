package rowfile

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/susu-dot-dev/mdbreader/internal/rows"
	"github.com/susu-dot-dev/mdbreader/pkg/types"
)

// WatcherOps defines the interface for file system watcher operations.
// Tests inject a fake; production code uses realWatcherOps over fsnotify.
type WatcherOps interface {
	// NewWatcher creates a new file system watcher
	NewWatcher() (WatcherInstance, error)
}

// WatcherInstance abstracts fsnotify.Watcher.
type WatcherInstance interface {
	Add(name string) error
	Close() error
	Events() <-chan fsnotify.Event
	Errors() <-chan error
}

type realWatcherOps struct{}

func (r *realWatcherOps) NewWatcher() (WatcherInstance, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &realWatcherInstance{w: w}, nil
}

type realWatcherInstance struct {
	w *fsnotify.Watcher
}

func (r *realWatcherInstance) Add(name string) error {
	return r.w.Add(name)
}

func (r *realWatcherInstance) Close() error {
	return r.w.Close()
}

func (r *realWatcherInstance) Events() <-chan fsnotify.Event {
	return r.w.Events
}

func (r *realWatcherInstance) Errors() <-chan error {
	return r.w.Errors
}

// RowCallback receives one decoded data row and its zero-based index.
type RowCallback func(index int64, row *rows.Row) error

// Watcher tails a row dump file and reports every data row appended to it.
//
// On start it delivers rows from startIndex up to the current end (the
// kickstart), then decodes complete rows on each fsnotify Write event. A
// partially written row waits for the next event. Row callbacks and onError
// run on the watcher goroutine; after onError the watcher stops delivering rows.
type Watcher struct {
	watcher     WatcherInstance
	dbFile      DBFile
	layout      *layout
	nextIndex   atomic.Int64
	subscribers *Subscriber[RowCallback]
	onError     func(error)
	done        chan struct{}
	closeOnce   sync.Once
}

// WatchOptions configures NewWatcher.
type WatchOptions struct {
	StartIndex int64      // First data row to deliver; rows before it are skipped
	Ops        WatcherOps // nil uses fsnotify
}

// NewWatcher opens path, validates it and launches the watch goroutine.
// onRow is the first subscriber; more can be added with Subscribe.
func NewWatcher(path string, onRow RowCallback, onError func(error), opts WatchOptions) (*Watcher, error) {
	if onRow == nil || onError == nil {
		return nil, types.NewInvalidInputError("onRow and onError callbacks are required", nil)
	}
	if opts.StartIndex < 0 {
		return nil, types.NewInvalidInputError("start index cannot be negative", nil)
	}
	ops := opts.Ops
	if ops == nil {
		ops = &realWatcherOps{}
	}

	dbFile, err := openDBFile(path, os.O_RDONLY)
	if err != nil {
		return nil, err
	}
	l, err := readLayout(dbFile)
	if err != nil {
		_ = dbFile.Close()
		return nil, err
	}

	instance, err := ops.NewWatcher()
	if err != nil {
		_ = dbFile.Close()
		return nil, types.NewReadError("failed to create fsnotify watcher", err)
	}
	if err := instance.Add(path); err != nil {
		_ = instance.Close()
		_ = dbFile.Close()
		return nil, types.NewReadError(fmt.Sprintf("failed to add watch for %s", path), err)
	}

	w := &Watcher{
		watcher:     instance,
		dbFile:      dbFile,
		layout:      l,
		subscribers: NewSubscriber[RowCallback](),
		onError:     onError,
		done:        make(chan struct{}),
	}
	w.subscribers.Subscribe(onRow)
	w.nextIndex.Store(opts.StartIndex)

	go w.watchLoop()

	return w, nil
}

// Schema returns the watched file's schema.
func (w *Watcher) Schema() *rows.Schema {
	return w.layout.schema
}

// Subscribe adds a callback for rows delivered after this call and returns
// an idempotent unsubscribe function. Rows already delivered are not replayed.
func (w *Watcher) Subscribe(callback RowCallback) (func() error, error) {
	if callback == nil {
		return nil, types.NewInvalidInputError("callback cannot be nil", nil)
	}
	return w.subscribers.Subscribe(callback), nil
}

// Close stops the watcher and waits for its goroutine to exit. Idempotent.
// Close must not be called from inside a row callback or onError.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		if cerr := w.watcher.Close(); cerr != nil {
			err = types.NewReadError("failed to close file watcher", cerr)
		}
		<-w.done
		if cerr := w.dbFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	})
	return err
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	// Kickstart: rows may have been appended before the watch was added.
	if err := w.processBatch(); err != nil {
		w.onError(err)
		return
	}

	for {
		select {
		case event, ok := <-w.watcher.Events():
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				if err := w.processBatch(); err != nil {
					w.onError(err)
					return
				}
			}

		case err, ok := <-w.watcher.Errors():
			if !ok {
				return
			}
			w.onError(types.NewReadError("file watcher error", err))
			return
		}
	}
}

// processBatch delivers every complete row from nextIndex to the end of the file.
func (w *Watcher) processBatch() error {
	available := w.layout.dataRowCount(w.dbFile.Size())
	rowSize := int32(w.layout.header.GetRowSize())

	for i := w.nextIndex.Load(); i < available; i++ {
		rowBytes, err := w.dbFile.Read(w.layout.dataOffset(i), rowSize)
		if err != nil {
			return err
		}
		row, err := decodeDataRow(w.layout.schema, rowBytes)
		if err != nil {
			return types.NewCorruptFileError(fmt.Sprintf("failed to parse row at index %d", i), err)
		}
		for _, callback := range w.subscribers.Snapshot() {
			if err := callback(i, row); err != nil {
				return err
			}
		}
		w.nextIndex.Store(i + 1)
	}
	return nil
}
