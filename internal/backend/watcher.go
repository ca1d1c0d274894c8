package backend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/places-popup/internal/confstore"
	"github.com/atomicstack/places-popup/internal/places"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindDisplayConfig Kind = iota
	KindFavoritesConfig
	KindTrash
)

func (k Kind) String() string {
	switch k {
	case KindDisplayConfig:
		return places.AppletID
	case KindFavoritesConfig:
		return places.FilesID
	case KindTrash:
		return "trash"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error. Config events may carry both: the
// best-effort document in Data and the keys that failed to load in Err. Data
// is nil when nothing could be loaded.
type Event struct {
	Kind Kind
	Data interface{}
	Keys []string
	Err  error
}

// Sources lists what the watcher follows. Nil namespaces are skipped, and a
// zero TrashInterval disables trash polling.
type Sources struct {
	Display       *confstore.Namespace
	Favorites     *confstore.Namespace
	Trash         places.TrashQuery
	TrashInterval time.Duration
}

// Watcher merges config subscriptions and the trash poller into one stream.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts following every configured source.
func NewWatcher(src Sources) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: src.TrashInterval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	if src.Display != nil {
		updates, err := confstore.Subscribe(ctx, src.Display, places.DefaultDisplayConfig)
		w.startForwarder(KindDisplayConfig, err, func() { forward(w, KindDisplayConfig, updates) })
	}
	if src.Favorites != nil {
		updates, err := confstore.Subscribe(ctx, src.Favorites, places.DefaultFavoritesConfig)
		w.startForwarder(KindFavoritesConfig, err, func() { forward(w, KindFavoritesConfig, updates) })
	}
	if src.Trash != nil && src.TrashInterval > 0 {
		w.startTrashPoller(src.Trash)
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Goroutines exit after their current step; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all goroutines have exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// startForwarder reports a failed subscription as a single error event.
func (w *Watcher) startForwarder(kind Kind, subscribeErr error, run func()) {
	w.wg.Add(1)
	if subscribeErr != nil {
		go func() {
			defer w.wg.Done()
			w.emit(Event{Kind: kind, Err: subscribeErr})
		}()
		return
	}
	go run()
}

func forward[T any](w *Watcher, kind Kind, updates <-chan confstore.Update[T]) {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			evt := Event{Kind: kind, Data: update.Config, Keys: update.Keys, Err: errors.Join(update.Errors...)}
			if !w.emit(evt) {
				return
			}
		}
	}
}

func (w *Watcher) startTrashPoller(trash places.TrashQuery) {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindTrash, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		return trash.NonEmpty(), nil
	})
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		return w.emit(Event{Kind: kind, Data: data, Err: err})
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
