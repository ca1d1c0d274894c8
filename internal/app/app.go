// Package app wires the places applet together.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/places-popup/internal/backend"
	"github.com/atomicstack/places-popup/internal/confstore"
	"github.com/atomicstack/places-popup/internal/format/table"
	"github.com/atomicstack/places-popup/internal/launch"
	"github.com/atomicstack/places-popup/internal/logging"
	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/state"
	"github.com/atomicstack/places-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ConfigRoot      string
	FileManager     string
	TrashFlag       string
	Anchor          popup.Anchor
	PopupWidth      float32
	TrashInterval   time.Duration
	LegacyPlaces    bool
	CloseOnActivate bool
	Width           int
	Height          int
}

// Sources lets callers replace the filesystem-facing collaborators. Nil
// fields use the real XDG implementations.
type Sources struct {
	Dirs  places.DirQuery
	Trash places.TrashQuery
	FS    places.FS
}

// environment holds what Run and List share: the config namespaces, the
// trash query and the controller seeded from the initial documents.
type environment struct {
	display    *confstore.Namespace
	favorites  *confstore.Namespace
	trash      places.TrashQuery
	controller *state.Controller
}

func newEnvironment(cfg Config, src Sources) *environment {
	if src.Dirs == nil {
		src.Dirs = places.XDGDirs{}
	}
	if src.Trash == nil {
		src.Trash = places.NewXDGTrash()
	}
	env := &environment{trash: src.Trash}
	env.display, env.favorites = openNamespaces(cfg.ConfigRoot)

	special := places.NewSpecialDirs(src.Dirs)
	builder := places.NewBuilder(places.NewResolver(src.Dirs, special, src.FS))
	display := loadNamespace(env.display, places.DefaultDisplayConfig)
	favorites := loadNamespace(env.favorites, places.DefaultFavoritesConfig)
	env.controller = state.NewController(builder, src.Trash, display, favorites, cfg.LegacyPlaces)
	return env
}

// openNamespaces returns nil namespaces when the store cannot be used; the
// applet then runs on defaults without change notifications.
func openNamespaces(root string) (*confstore.Namespace, *confstore.Namespace) {
	if root == "" {
		root = confstore.DefaultRoot()
	}
	store, err := confstore.Open(root)
	if err != nil {
		logging.Error(fmt.Errorf("open config store: %w", err))
		return nil, nil
	}
	display, err := store.Namespace(places.AppletID, places.AppletConfigVersion)
	if err != nil {
		logging.Error(fmt.Errorf("open %s config: %w", places.AppletID, err))
		display = nil
	}
	favorites, err := store.Namespace(places.FilesID, places.FilesConfigVersion)
	if err != nil {
		logging.Error(fmt.Errorf("open %s config: %w", places.FilesID, err))
		favorites = nil
	}
	return display, favorites
}

// loadNamespace reads a document over its defaults. Keys that fail to load
// keep their default and are logged.
func loadNamespace[T any](ns *confstore.Namespace, defaults func() T) T {
	doc := defaults()
	if ns == nil {
		return doc
	}
	errs := ns.Load(&doc)
	if len(errs) == 0 {
		return doc
	}
	keys := make([]string, 0, len(errs))
	for _, err := range errs {
		var keyErr *confstore.KeyError
		if errors.As(err, &keyErr) {
			keys = append(keys, keyErr.Key)
		}
	}
	err := errors.Join(errs...)
	events.Config.LoadErrors(ns.Name(), keys, err)
	logging.Error(fmt.Errorf("load %s config: %w", ns.Name(), err))
	return doc
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return RunWith(cfg, Sources{})
}

// RunWith is Run with replaceable filesystem collaborators.
func RunWith(cfg Config, src Sources) error {
	env := newEnvironment(cfg, src)
	watcher := backend.NewWatcher(backend.Sources{
		Display:       env.display,
		Favorites:     env.favorites,
		Trash:         env.trash,
		TrashInterval: cfg.TrashInterval,
	})
	defer watcher.Stop()

	launcher := launch.New(launch.Options{
		FileManager: cfg.FileManager,
		TrashFlag:   cfg.TrashFlag,
		Logger:      logging.Logger().WithName("launch"),
	})
	limits := popup.DefaultLimits()
	if cfg.PopupWidth > 0 {
		limits = limits.WithMaxWidth(cfg.PopupWidth)
	}
	model := ui.NewModel(ui.Options{
		Controller:      env.controller,
		Lifecycle:       popup.New(popup.WithLimits(limits)),
		Launcher:        launcher,
		Watcher:         watcher,
		Anchor:          cfg.Anchor,
		CloseOnActivate: cfg.CloseOnActivate,
		Width:           cfg.Width,
		Height:          cfg.Height,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := program.Run()
	stats := launcher.Stats()
	logging.Logger().Info("applet stopped", "launched", stats.Launched, "failed", stats.Failed)
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("quit")
	return nil
}

// List writes the current entry sequence as a table and returns.
func List(cfg Config, w io.Writer) error {
	return ListWith(cfg, Sources{}, w)
}

// ListWith is List with replaceable filesystem collaborators.
func ListWith(cfg Config, src Sources, w io.Writer) error {
	env := newEnvironment(cfg, src)
	entries := env.controller.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Label, string(e.Icon), e.Location.String()}
	}
	for _, line := range table.FormatWithHeader([]string{"LABEL", "ICON", "LOCATION"}, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return nil
}
