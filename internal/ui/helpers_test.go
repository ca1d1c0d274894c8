package ui

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/state"
)

type dirInfo string

func (d dirInfo) Name() string       { return filepath.Base(string(d)) }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o755 }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return true }
func (d dirInfo) Sys() any           { return nil }

type dirFS map[string]struct{}

func (f dirFS) Stat(name string) (fs.FileInfo, error) {
	if _, ok := f[filepath.Clean(name)]; !ok {
		return nil, fs.ErrNotExist
	}
	return dirInfo(name), nil
}

type recordingLauncher struct {
	mu        sync.Mutex
	locations []places.Location
}

func (r *recordingLauncher) Dispatch(loc places.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = append(r.locations, loc)
}

func (r *recordingLauncher) launched() []places.Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]places.Location(nil), r.locations...)
}

func sequentialIDs() func() popup.ID {
	n := 0
	return func() popup.ID {
		n++
		return popup.ID(fmt.Sprintf("popup-%d", n))
	}
}

var daveDirs = places.StaticDirs{
	places.Home:      "/home/dave",
	places.Music:     "/home/dave/Music",
	places.Downloads: "/home/dave/Downloads",
	places.Documents: "/home/dave/Documents",
}

func daveFS() dirFS {
	fsys := dirFS{"/": {}}
	for _, p := range daveDirs {
		fsys[p] = struct{}{}
	}
	return fsys
}

func favs(refs ...places.FavoriteRef) places.FavoritesConfig {
	return places.FavoritesConfig{Favorites: refs}
}

func newController(t *testing.T, display places.DisplayConfig, favorites places.FavoritesConfig) *state.Controller {
	t.Helper()
	resolver := places.NewResolver(daveDirs, places.NewSpecialDirs(daveDirs), daveFS())
	return state.NewController(places.NewBuilder(resolver), places.StaticTrash(false), display, favorites, false)
}

type fixture struct {
	harness    *Harness
	controller *state.Controller
	launcher   *recordingLauncher
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	if opts.Controller == nil {
		opts.Controller = newController(t, places.DefaultDisplayConfig(),
			favs(places.TagRef(places.Home), places.TagRef(places.Music), places.TagRef(places.Downloads)))
	}
	if opts.Lifecycle == nil {
		opts.Lifecycle = popup.New(popup.WithIDGenerator(sequentialIDs()))
	}
	launcher := &recordingLauncher{}
	if opts.Launcher == nil {
		opts.Launcher = launcher
	}
	return fixture{
		harness:    NewHarness(NewModel(opts)),
		controller: opts.Controller,
		launcher:   launcher,
	}
}

func itemLabels(m *Model) []string {
	if m.List() == nil {
		return nil
	}
	out := make([]string, len(m.List().Items))
	for i, item := range m.List().Items {
		out[i] = item.Label
	}
	return out
}

func newControllerWith(resolver *places.Resolver, favorites places.FavoritesConfig) *state.Controller {
	return state.NewController(places.NewBuilder(resolver), places.StaticTrash(false), places.DefaultDisplayConfig(), favorites, false)
}
