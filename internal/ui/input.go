package ui

import (
	"unicode"

	"github.com/atomicstack/places-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleTextInput applies filter edits. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.list
	if current == nil {
		return false
	}
	id := m.popupID()
	switch msg.String() {
	case "ctrl+u":
		if !current.ClearFilter() {
			return false
		}
		events.Filter.Cleared(id)
		m.syncViewport()
		return true
	case "ctrl+w":
		if !current.DeleteFilterWordBackward() {
			return false
		}
		events.Filter.WordBackspace(id, current.Filter)
		m.syncViewport()
		return true
	case "ctrl+a":
		if !current.MoveFilterCursorStart() {
			return false
		}
		events.Filter.Cursor(id, current.FilterCursor)
		return true
	case "ctrl+e":
		if !current.MoveFilterCursorEnd() {
			return false
		}
		events.Filter.Cursor(id, current.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !current.DeleteFilterRuneBackward() {
			return false
		}
		events.Filter.Backspace(id, current.Filter)
		m.syncViewport()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		if !current.MoveFilterCursorRuneBackward() {
			return false
		}
		events.Filter.Cursor(id, current.FilterCursor)
		return true
	case tea.KeyRight:
		if !current.MoveFilterCursorRuneForward() {
			return false
		}
		events.Filter.Cursor(id, current.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if m.list == nil || !m.list.InsertFilterText(text) {
		return false
	}
	events.Filter.Append(m.popupID(), m.list.Filter)
	m.syncViewport()
	return true
}

// filterPrompt renders the filter line with the caret at the edit position.
func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	current := m.list
	if current == nil {
		return prompt
	}
	if current.Filter == "" {
		placeholder := []rune("type to filter")
		m.filterCursor.SetChar(string(placeholder[0]))
		return prompt + m.filterCursor.View() + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(current.Filter)
	pos := current.FilterCursorPos()
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	m.filterCursor.SetChar(caret)
	return prompt + render(styles.Filter, string(runes[:pos])) + m.filterCursor.View() + render(styles.Filter, after)
}
