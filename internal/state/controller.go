// Package state owns the configuration documents and the navigation list
// derived from them.
package state

import (
	"slices"

	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
)

// Controller keeps the display and favorites documents and rebuilds the
// entry list when a change affects it. It is not safe for concurrent use; the
// UI loop is its only caller.
type Controller struct {
	builder *places.Builder
	trash   places.TrashQuery
	legacy  bool

	display   places.DisplayConfig
	favorites places.FavoritesConfig
	trashFull bool

	entries    []places.Entry
	generation uint64
}

// NewController adopts the initial documents and builds the first list. When
// legacy is set the list shows every special directory instead of favorites.
func NewController(builder *places.Builder, trash places.TrashQuery, display places.DisplayConfig, favorites places.FavoritesConfig, legacy bool) *Controller {
	c := &Controller{
		builder:   builder,
		trash:     trash,
		legacy:    legacy,
		display:   display,
		favorites: favorites.Clone(),
	}
	c.trashFull = c.queryTrash()
	c.rebuild()
	return c
}

func (c *Controller) queryTrash() bool {
	if c.trash == nil {
		return false
	}
	return c.trash.NonEmpty()
}

func (c *Controller) rebuild() {
	if c.legacy {
		c.entries = c.builder.BuildWellKnown(c.trashFull)
	} else {
		c.entries = c.builder.Build(c.favorites, c.trashFull)
	}
	c.generation++
	events.Places.Rebuild(c.generation, len(c.entries), c.legacy)
}

// OnDisplayConfigChanged stores cfg when it differs. The entry list does not
// depend on it, so nothing is rebuilt.
func (c *Controller) OnDisplayConfigChanged(cfg places.DisplayConfig) bool {
	changed := !c.display.Equal(cfg)
	if changed {
		c.display = cfg
	}
	events.Config.Display(cfg.ShowIcon, changed)
	return changed
}

// OnFavoritesConfigChanged stores cfg when it differs and rebuilds the list,
// re-reading the trash state at the same time.
func (c *Controller) OnFavoritesConfigChanged(cfg places.FavoritesConfig) bool {
	changed := !c.favorites.Equal(cfg)
	events.Config.Favorites(len(cfg.Favorites), changed)
	if !changed {
		return false
	}
	c.favorites = cfg.Clone()
	if !c.legacy {
		c.trashFull = c.queryTrash()
		c.rebuild()
	}
	return true
}

// OnTrashChanged rebuilds the list when the trash flips between empty and
// full so the trash icon stays accurate.
func (c *Controller) OnTrashChanged(full bool) bool {
	changed := full != c.trashFull
	events.Config.Trash(full, changed)
	if !changed {
		return false
	}
	c.trashFull = full
	c.rebuild()
	return true
}

// Entries returns a copy of the current list.
func (c *Controller) Entries() []places.Entry {
	return slices.Clone(c.entries)
}

// Generation increases every time the list is rebuilt. Handles derived from
// an older generation must not be used.
func (c *Controller) Generation() uint64 {
	return c.generation
}

func (c *Controller) Display() places.DisplayConfig {
	return c.display
}

func (c *Controller) Favorites() places.FavoritesConfig {
	return c.favorites.Clone()
}

func (c *Controller) TrashFull() bool {
	return c.trashFull
}

func (c *Controller) Legacy() bool {
	return c.legacy
}
