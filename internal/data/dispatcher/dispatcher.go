// Package dispatcher applies backend events to the places controller.
package dispatcher

import (
	"github.com/atomicstack/places-popup/internal/backend"
	"github.com/atomicstack/places-popup/internal/logging"
	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/state"
)

type Result struct {
	DisplayUpdated   bool
	FavoritesUpdated bool
	TrashUpdated     bool
}

// Rebuilt reports whether the entry list was replaced.
func (r Result) Rebuilt() bool {
	return r.FavoritesUpdated || r.TrashUpdated
}

type Dispatcher struct {
	controller *state.Controller
}

func New(c *state.Controller) *Dispatcher {
	return &Dispatcher{controller: c}
}

// Handle feeds evt to the controller. Load errors are logged but do not stop
// a partially loaded document from being applied.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Config.LoadErrors(evt.Kind.String(), evt.Keys, evt.Err)
		logging.Error(evt.Err)
	}
	if evt.Data == nil {
		return res
	}
	switch evt.Kind {
	case backend.KindDisplayConfig:
		if cfg, ok := evt.Data.(places.DisplayConfig); ok {
			res.DisplayUpdated = d.controller.OnDisplayConfigChanged(cfg)
		}
	case backend.KindFavoritesConfig:
		if cfg, ok := evt.Data.(places.FavoritesConfig); ok {
			res.FavoritesUpdated = d.controller.OnFavoritesConfigChanged(cfg)
		}
	case backend.KindTrash:
		if full, ok := evt.Data.(bool); ok {
			res.TrashUpdated = d.controller.OnTrashChanged(full)
		}
	}
	return res
}
