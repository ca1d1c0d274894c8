package theme

import (
	"github.com/atomicstack/places-popup/internal/places"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Panel                 *lipgloss.Style
	PanelLabel            *lipgloss.Style
	PanelActive           *lipgloss.Style
	Popup                 *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIcon              *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Divider               *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Panel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	PanelLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PanelActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Padding(0, 1),
	),
	Popup: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

// glyphs maps icon names to single-cell terminal stand-ins.
var glyphs = map[places.Icon]string{
	places.IconFolder:         "▸",
	places.IconHome:           "⌂",
	places.IconDesktop:        "▭",
	places.IconDocuments:      "≡",
	places.IconDownload:       "↓",
	places.IconMusic:          "♪",
	places.IconPictures:       "▣",
	places.IconVideos:         "▶",
	places.IconPublicShare:    "⇄",
	places.IconTemplates:      "◫",
	places.IconFilesystem:     "◉",
	places.IconTextGeneric:    "·",
	places.IconTrashEmpty:     "○",
	places.IconTrashFull:      "●",
	places.IconFileManagerApp: "◧",
}

// symbolicGlyphs keys the same glyphs by their symbolic icon names.
var symbolicGlyphs = func() map[string]string {
	out := make(map[string]string, len(glyphs))
	for icon, g := range glyphs {
		out[icon.Symbolic()] = g
	}
	return out
}()

// Glyph returns the glyph for icon, accepting both plain and symbolic names.
// Unknown icons fall back to the generic folder glyph.
func Glyph(icon places.Icon) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	if g, ok := symbolicGlyphs[string(icon)]; ok {
		return g
	}
	return glyphs[places.IconFolder]
}
