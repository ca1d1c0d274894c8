package ui

import (
	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/ui/command"
	uistate "github.com/atomicstack/places-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.list == nil {
		if key.Matches(keyMsg, m.keys.Toggle) {
			return m.toggle()
		}
		if keyMsg.String() == "q" {
			return tea.Quit
		}
		return nil
	}
	if key.Matches(keyMsg, m.keys.Close) {
		if m.list.ClearFilter() {
			events.Filter.Cleared(m.popupID())
			m.syncViewport()
			return nil
		}
		return m.toggle()
	}
	if key.Matches(keyMsg, m.keys.Activate) {
		return m.activateSelected()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorDown)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.Cursor(m.popupID(), m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.list == nil {
		return
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) popupID() string {
	id, _ := m.lifecycle.Current()
	return string(id)
}

func (m *Model) handleToggleMsg(msg tea.Msg) tea.Cmd {
	return m.toggle()
}

// toggle drives the lifecycle and creates or drops the list to match.
func (m *Model) toggle() tea.Cmd {
	tr := m.lifecycle.Toggle()
	switch tr.Op {
	case popup.OpCreate:
		m.list = uistate.NewList(m.controller.Generation(), m.controller.Entries())
		m.syncViewport()
		events.Popup.Open(string(tr.ID), tr.Limits)
	case popup.OpDestroy:
		m.list = nil
		events.Popup.Close(string(tr.ID), events.PopupReasonToggle)
	}
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	id, open := m.lifecycle.Current()
	if !open {
		return nil
	}
	return func() tea.Msg { return PopupClosedMsg{ID: id} }
}

func (m *Model) handlePopupClosedMsg(msg tea.Msg) tea.Cmd {
	closed, ok := msg.(PopupClosedMsg)
	if !ok {
		return nil
	}
	if !m.lifecycle.ExternalClose(closed.ID) {
		current, _ := m.lifecycle.Current()
		events.Popup.StaleClose(string(closed.ID), string(current))
		return nil
	}
	m.list = nil
	events.Popup.Close(string(closed.ID), events.PopupReasonExternal)
	return nil
}

// activateSelected turns the row under the cursor into an ActivateMsg so the
// generation check happens in Update, after any queued rebuild.
func (m *Model) activateSelected() tea.Cmd {
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	msg := ActivateMsg{Generation: m.list.Generation, Index: item.Index}
	return func() tea.Msg { return msg }
}

func (m *Model) handleActivateMsg(msg tea.Msg) tea.Cmd {
	activate, ok := msg.(ActivateMsg)
	if !ok {
		return nil
	}
	current := m.controller.Generation()
	entries := m.controller.Entries()
	if activate.Generation != current || activate.Index < 0 || activate.Index >= len(entries) {
		events.Places.StaleActivation(activate.Generation, current, activate.Index)
		return nil
	}
	entry := entries[activate.Index]
	events.Places.Activate(current, activate.Index, entry.Label, entry.Location.String())

	req := command.Request{
		ID:       uistate.ItemID(current, activate.Index),
		Label:    entry.Label,
		Location: entry.Location,
	}
	if m.launcher != nil {
		req.Handler = m.launcher.Dispatch
	}
	cmds := []tea.Cmd{m.bus.Execute(req)}
	if id, open := m.lifecycle.Current(); open && m.closeOnActivate {
		cmds = append(cmds, func() tea.Msg { return PopupClosedMsg{ID: id} })
	}
	return tea.Batch(cmds...)
}
