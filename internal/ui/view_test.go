package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/places-popup/internal/backend"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapsedViewFollowsDisplayConfig(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness
	icon := theme.Glyph(places.IconFileManagerApp)

	assert.Contains(t, h.View(), icon)
	assert.NotContains(t, h.View(), "Places")

	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDisplayConfig, Data: places.DisplayConfig{ShowIcon: false}}})
	assert.Contains(t, h.View(), "Places")
	assert.NotContains(t, h.View(), icon)
}

func TestCollapsedViewOnVerticalPanel(t *testing.T) {
	for _, anchor := range []popup.Anchor{popup.AnchorLeft, popup.AnchorRight} {
		controller := newController(t, places.DisplayConfig{ShowIcon: false}, favs(places.TagRef(places.Home)))
		f := newFixture(t, Options{Controller: controller, Anchor: anchor})
		assert.Contains(t, f.harness.View(), theme.Glyph(places.IconFileManagerApp), anchor.String())
	}
}

func TestPopupViewListsEntries(t *testing.T) {
	f := newFixture(t, Options{Width: 60, Height: 20})
	h := f.harness
	h.Send(TogglePopupMsg{})

	view := h.View()
	for _, label := range []string{"Home", "Music", "Downloads", "Trash"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, theme.Glyph(places.IconTrashEmpty))
	assert.Contains(t, view, "type to filter")
}

func TestPopupViewShowsNoMatches(t *testing.T) {
	f := newFixture(t, Options{Width: 60, Height: 20})
	h := f.harness
	h.Send(TogglePopupMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	assert.Contains(t, h.View(), `No matches for "zzz"`)
}

func TestPopupViewportScrolls(t *testing.T) {
	refs := make([]places.FavoriteRef, 0, 12)
	fsys := daveFS()
	for i := 0; i < 12; i++ {
		p := fmt.Sprintf("/srv/share-%02d", i)
		fsys[p] = struct{}{}
		refs = append(refs, places.PathRef(p))
	}
	resolver := places.NewResolver(daveDirs, places.NewSpecialDirs(daveDirs), fsys)
	controller := newControllerWith(resolver, favs(refs...))

	f := newFixture(t, Options{Controller: controller, Width: 60})
	h := f.harness
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 10})
	h.Send(TogglePopupMsg{})

	visible := h.Model().maxVisibleItems()
	require.Equal(t, 3, visible)
	assert.Contains(t, h.View(), "share-00")
	assert.NotContains(t, h.View(), "share-07")

	for i := 0; i < 7; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view := h.View()
	assert.Contains(t, view, "share-07")
	assert.NotContains(t, view, "share-00")
}

func TestPopupFooterShowsHighlightedLocation(t *testing.T) {
	f := newFixture(t, Options{Width: 60, Height: 20})
	h := f.harness
	h.Send(TogglePopupMsg{})
	first, ok := h.Model().List().Selected()
	require.True(t, ok)
	assert.Contains(t, h.View(), first.Location.String())
	assert.Contains(t, h.View(), "─")

	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	last, ok := h.Model().List().Selected()
	require.True(t, ok)
	assert.Equal(t, "trash://", last.Location.String())
	assert.Contains(t, h.View(), "trash://")
}

func TestPopupAnchors(t *testing.T) {
	f := newFixture(t, Options{Anchor: popup.AnchorBottom, Width: 60, Height: 20})
	h := f.harness
	h.Send(TogglePopupMsg{})
	lines := strings.Split(h.View(), "\n")
	assert.Contains(t, lines[len(lines)-1], theme.Glyph(places.IconFileManagerApp))
}

func TestLabelsAreTruncated(t *testing.T) {
	long := "/srv/" + strings.Repeat("x", 80)
	fsys := daveFS()
	fsys[long] = struct{}{}
	resolver := places.NewResolver(daveDirs, places.NewSpecialDirs(daveDirs), fsys)
	controller := newControllerWith(resolver, favs(places.PathRef(long)))

	f := newFixture(t, Options{Controller: controller, Width: 40, Height: 20})
	h := f.harness
	h.Send(TogglePopupMsg{})
	for _, line := range strings.Split(h.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
	assert.Contains(t, h.View(), "…")
}
