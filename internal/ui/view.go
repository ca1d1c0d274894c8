package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/places-popup/internal/logging/events"
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/atomicstack/places-popup/internal/popup"
	"github.com/atomicstack/places-popup/internal/theme"
	uistate "github.com/atomicstack/places-popup/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	// popup limits are in device-independent units; a terminal cell is
	// treated as 8 units wide and 16 units tall.
	unitsPerColumn = 8
	unitsPerRow    = 16

	panelText    = "Places"
	popupTitle   = "Places"
	popupChrome  = 4 // border and horizontal padding
	popupFixed   = 6 // border, title, divider, footer and filter rows
	itemPrefixW  = 4 // indicator, glyph and two spaces
	rowIndicator = "▌"
)

// View implements tea.Model.
func (m *Model) View() string {
	panel := m.panelButton()
	if m.list == nil {
		return panel
	}
	box := m.renderPopup()
	switch m.anchor {
	case popup.AnchorBottom:
		return lipgloss.JoinVertical(lipgloss.Left, box, panel)
	case popup.AnchorLeft:
		return lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", box)
	case popup.AnchorRight:
		return lipgloss.JoinHorizontal(lipgloss.Top, box, " ", panel)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, panel, box)
	}
}

// panelContent returns the collapsed button content: the file manager icon when
// the display config asks for it or the panel is vertical, otherwise a label.
func (m *Model) panelContent() string {
	if m.controller.Display().ShowIcon || m.anchor.Vertical() {
		return theme.Glyph(places.IconFileManagerApp)
	}
	return panelText
}

func (m *Model) panelButton() string {
	style := styles.Panel
	if m.list != nil {
		style = styles.PanelActive
	}
	content := m.panelContent()
	if content == panelText {
		content = renderStyled(styles.PanelLabel, content)
	}
	if style == nil {
		return content
	}
	return style.Render(content)
}

// popupInnerWidth is the usable width inside the popup frame in cells.
func (m *Model) popupInnerWidth() int {
	limits := m.lifecycle.Limits()
	outer := int(limits.MaxWidth / unitsPerColumn)
	minOuter := int(limits.MinWidth / unitsPerColumn)
	if m.width > 0 {
		avail := m.width
		if m.anchor.Vertical() {
			avail -= runewidth.StringWidth(m.panelContent()) + 3
		}
		outer = min(outer, avail)
	}
	outer = max(outer, minOuter)
	return max(outer-popupChrome, 1)
}

// maxVisibleItems returns how many rows fit in the popup.
func (m *Model) maxVisibleItems() int {
	limits := m.lifecycle.Limits()
	rows := int(limits.MaxHeight/unitsPerRow) - popupFixed
	if m.height > 0 {
		avail := m.height - popupFixed
		if !m.anchor.Vertical() {
			avail--
		}
		rows = min(rows, avail)
	}
	return max(rows, 1)
}

func (m *Model) renderPopup() string {
	inner := m.popupInnerWidth()
	lines := make([]string, 0, m.list.Len()+4)
	lines = append(lines,
		renderStyled(styles.Header, fitWidth(popupTitle, inner)),
		renderStyled(styles.Divider, strings.Repeat("─", inner)),
	)
	if m.list.Len() == 0 {
		msg := "(no places)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, renderStyled(styles.Info, fitWidth(msg, inner)))
	} else {
		m.syncViewport()
		visible := m.list.Visible(m.maxVisibleItems())
		start := m.list.IndexOf(visible[0].ID)
		for i, item := range visible {
			lines = append(lines, m.renderItem(item, start+i == m.list.Cursor, inner))
		}
	}
	lines = append(lines, renderStyled(styles.Footer, fitWidth(m.footerText(), inner)))
	lines = append(lines, ansi.Truncate(m.filterPrompt(), inner, ""))
	body := strings.Join(lines, "\n")
	if styles.Popup == nil {
		return body
	}
	return styles.Popup.Width(inner + 2).Render(body)
}

// footerText is the location behind the highlighted row.
func (m *Model) footerText() string {
	item, ok := m.list.Selected()
	if !ok {
		return ""
	}
	return item.Location.String()
}

func (m *Model) renderItem(item uistate.Item, selected bool, width int) string {
	indicatorStyle, iconStyle, lineStyle := styles.ItemIndicator, styles.ItemIcon, styles.Item
	if selected {
		indicatorStyle, iconStyle, lineStyle = styles.SelectedItemIndicator, styles.SelectedItem, styles.SelectedItem
	}
	glyph := fitWidth(theme.Glyph(item.Icon), 1)
	label := fitWidth(item.Label, max(width-itemPrefixW, 1))
	return renderStyled(indicatorStyle, rowIndicator) +
		renderStyled(lineStyle, " ") +
		renderStyled(iconStyle, glyph) +
		renderStyled(lineStyle, " "+label)
}

// fitWidth truncates or pads s to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	return nil
}
