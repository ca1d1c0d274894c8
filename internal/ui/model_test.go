package ui

import (
	"testing"

	"github.com/atomicstack/places-popup/internal/backend"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleOpensAndClosesPopup(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	id, open := h.Model().Lifecycle().Current()
	require.True(t, open)
	assert.Equal(t, popup.ID("popup-1"), id)
	assert.Equal(t, []string{"Home", "Music", "Downloads", "Trash"}, itemLabels(h.Model()))

	h.Send(TogglePopupMsg{})
	assert.False(t, h.Model().Lifecycle().IsOpen())
	assert.Nil(t, h.Model().List())
}

func TestToggleKeys(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, h.Model().Lifecycle().IsOpen())
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.Model().Lifecycle().IsOpen())
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.True(t, h.Model().Lifecycle().IsOpen())

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, h.Quit())
}

func TestActivateLaunchesSelectedEntry(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []places.Location{places.PathLocation("/home/dave/Music")}, f.launcher.launched())
	assert.True(t, h.Model().Lifecycle().IsOpen(), "popup stays open unless configured otherwise")
}

func TestActivateTrash(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []places.Location{places.TrashLocation()}, f.launcher.launched())
}

func TestCloseOnActivate(t *testing.T) {
	f := newFixture(t, Options{CloseOnActivate: true})
	h := f.harness

	h.Send(TogglePopupMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, f.launcher.launched(), 1)
	assert.False(t, h.Model().Lifecycle().IsOpen())
	assert.Nil(t, h.Model().List())
}

func TestStaleActivationIsIgnored(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	oldGen := h.Model().List().Generation

	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindFavoritesConfig,
		Data: favs(places.TagRef(places.Documents)),
	}})
	require.NotEqual(t, oldGen, f.controller.Generation())
	assert.Equal(t, []string{"Documents", "Trash"}, itemLabels(h.Model()))

	h.Send(ActivateMsg{Generation: oldGen, Index: 0})
	assert.Empty(t, f.launcher.launched())

	h.Send(ActivateMsg{Generation: f.controller.Generation(), Index: 7})
	assert.Empty(t, f.launcher.launched())

	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []places.Location{places.PathLocation("/home/dave/Documents")}, f.launcher.launched())
}

func TestExternalCloseForStaleID(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	h.Send(TogglePopupMsg{})
	h.Send(TogglePopupMsg{})
	id, open := h.Model().Lifecycle().Current()
	require.True(t, open)
	require.Equal(t, popup.ID("popup-2"), id)

	h.Send(PopupClosedMsg{ID: "popup-1"})
	assert.True(t, h.Model().Lifecycle().IsOpen())
	assert.NotNil(t, h.Model().List())

	h.Send(PopupClosedMsg{ID: "popup-2"})
	assert.False(t, h.Model().Lifecycle().IsOpen())
	assert.Nil(t, h.Model().List())

	h.Send(PopupClosedMsg{ID: "popup-2"})
	assert.False(t, h.Model().Lifecycle().IsOpen())
}

func TestBlurClosesPopup(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(tea.BlurMsg{})
	assert.False(t, h.Model().Lifecycle().IsOpen())

	h.Send(TogglePopupMsg{})
	h.Send(tea.BlurMsg{})
	assert.False(t, h.Model().Lifecycle().IsOpen())
}

func TestTrashEventRefreshesOpenList(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness

	h.Send(TogglePopupMsg{})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindTrash, Data: true}})

	items := h.Model().List().Items
	assert.Equal(t, places.IconTrashFull, items[len(items)-1].Icon)
	item, ok := h.Model().List().Selected()
	require.True(t, ok)
	assert.Equal(t, "Music", item.Label, "cursor follows the selected location")
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	f := newFixture(t, Options{})
	h := f.harness
	h.Send(backendDoneMsg{})
	assert.Nil(t, h.Model().backend)
	assert.Nil(t, h.Model().Init())
}
