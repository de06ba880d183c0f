// Package ivwatch watches a directory of YAML interval-dump files and
// reloads a long-lived ivstore.Store on change, batching filesystem events
// before flushing, the way watcher.Watcher batches file events before
// updating a Recent collection — repurposed from mutating RECENT files to
// reloading an in-memory interval index wholesale.
package ivwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivstore"
	"github.com/abh/ivstore/ivtypes"
)

// Watcher monitors a directory of *.yaml interval-dump files and reloads
// store on change.
type Watcher struct {
	fsw   *fsnotify.Watcher
	store *ivstore.Store
	root  string

	batchDelay time.Duration

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	runMu   sync.RWMutex

	verbose bool

	errorHandler   func(error)
	reloadCallback func(count int, duration time.Duration)
}

// Option is a functional option for configuring the Watcher.
type Option func(*Watcher)

// WithBatchDelay sets the debounce delay between an event and a reload.
func WithBatchDelay(delay time.Duration) Option {
	return func(w *Watcher) { w.batchDelay = delay }
}

// WithVerbose enables verbose logging.
func WithVerbose(v bool) Option {
	return func(w *Watcher) { w.verbose = v }
}

// WithErrorHandler sets a callback for handling errors.
func WithErrorHandler(handler func(error)) Option {
	return func(w *Watcher) { w.errorHandler = handler }
}

// WithReloadCallback sets a callback invoked after each successful reload
// with the number of intervals loaded and how long the reload took.
func WithReloadCallback(callback func(count int, duration time.Duration)) Option {
	return func(w *Watcher) { w.reloadCallback = callback }
}

// New creates a watcher for root that reloads store whenever a *.yaml file
// under root changes.
func New(root string, store *ivstore.Store, opts ...Option) (*Watcher, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		fsw:          fsw,
		store:        store,
		root:         root,
		batchDelay:   500 * time.Millisecond,
		ctx:          ctx,
		cancel:       cancel,
		errorHandler: func(err error) { fmt.Fprintf(os.Stderr, "ivwatch error: %v\n", err) },
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start begins watching root and performs an initial load.
func (w *Watcher) Start() error {
	w.runMu.Lock()
	if w.running {
		w.runMu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.runMu.Unlock()

	if err := w.fsw.Add(w.root); err != nil {
		w.runMu.Lock()
		w.running = false
		w.runMu.Unlock()
		return fmt.Errorf("watch root %s: %w", w.root, err)
	}

	w.wg.Add(1)
	go w.eventLoop()

	w.reload()

	return nil
}

// Stop stops the watcher gracefully.
func (w *Watcher) Stop() error {
	w.runMu.Lock()
	if !w.running {
		w.runMu.Unlock()
		return nil
	}
	w.runMu.Unlock()

	w.cancel()
	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("close fsnotify: %w", err)
	}
	w.wg.Wait()

	w.runMu.Lock()
	w.running = false
	w.runMu.Unlock()

	return nil
}

// eventLoop drains fsnotify events, debounces bursts via batchDelay, and
// triggers a reload after each settled burst.
func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isDumpFile(event.Name) {
				continue
			}
			if w.verbose {
				fmt.Printf("event: %s %s\n", event.Op, event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.batchDelay)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.batchDelay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.errorHandler != nil {
				w.errorHandler(fmt.Errorf("fsnotify error: %w", err))
			}

		case <-w.ctx.Done():
			return
		}
	}
}

// reload loads every *.yaml file under root and replaces the store's
// contents wholesale via Store.Reload.
func (w *Watcher) reload() {
	start := time.Now()

	entries, err := os.ReadDir(w.root)
	if err != nil {
		if w.errorHandler != nil {
			w.errorHandler(fmt.Errorf("read dir %s: %w", w.root, err))
		}
		return
	}

	var ivs []interval.Interval
	for _, e := range entries {
		if e.IsDir() || !isDumpFile(e.Name()) {
			continue
		}
		d, err := ivtypes.LoadDump(filepath.Join(w.root, e.Name()))
		if err != nil {
			if w.errorHandler != nil {
				w.errorHandler(fmt.Errorf("load %s: %w", e.Name(), err))
			}
			continue
		}
		ivs = append(ivs, d.Intervals()...)
	}

	w.store.Reload(ivs)

	if w.verbose {
		fmt.Printf("reloaded %d intervals from %s\n", len(ivs), w.root)
	}
	if w.reloadCallback != nil {
		w.reloadCallback(len(ivs), time.Since(start))
	}
}

func isDumpFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".yaml") || strings.HasSuffix(base, ".yml")
}
