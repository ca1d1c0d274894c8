package confstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is a freshly loaded document together with the keys whose change
// triggered it and any errors hit while loading.
type Update[T any] struct {
	Config T
	Keys   []string
	Errors []error
}

// Subscribe watches ns and sends a reloaded document every time one of the
// document's keys is written, created, renamed or removed. The first update,
// with no keys, is the document as loaded once the watch is in place, so
// writes made before Subscribe returned are never lost. The document starts
// from defaults() on every reload so removed keys fall back to their default.
// The channel is closed when ctx is cancelled or the watcher fails fatally.
func Subscribe[T any](ctx context.Context, ns *Namespace, defaults func() T) (<-chan Update[T], error) {
	if err := ns.ensureDir(); err != nil {
		return nil, fmt.Errorf("watch %s: %w", ns.name, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", ns.name, err)
	}
	if err := watcher.Add(ns.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", ns.name, err)
	}

	known := make(map[string]struct{})
	for _, key := range Keys(defaults()) {
		known[key] = struct{}{}
	}

	out := make(chan Update[T], 4)
	out <- reload(ns, defaults, nil, nil)
	go func() {
		defer close(out)
		defer watcher.Close()

		send := func(update Update[T]) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- update:
				return true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				key := filepath.Base(event.Name)
				if _, ok := known[key]; !ok {
					continue
				}
				if !send(reload(ns, defaults, []string{key}, nil)) {
					return
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if !send(reload(ns, defaults, nil, werr)) {
					return
				}
			}
		}
	}()
	return out, nil
}

func reload[T any](ns *Namespace, defaults func() T, keys []string, cause error) Update[T] {
	doc := defaults()
	errs := ns.Load(&doc)
	if cause != nil {
		errs = append([]error{fmt.Errorf("watch %s: %w", ns.name, cause)}, errs...)
	}
	return Update[T]{Config: doc, Keys: keys, Errors: errs}
}
