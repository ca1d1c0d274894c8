package theme

import (
	"testing"

	"github.com/atomicstack/places-popup/internal/places"
	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, "⌂", Glyph(places.IconHome))
	assert.Equal(t, "●", Glyph(places.Icon(places.IconTrashFull.Symbolic())))
	assert.Equal(t, Glyph(places.IconFolder), Glyph("application-x-unknown"))
	assert.Equal(t, Glyph(places.IconFolder), Glyph("application-x-unknown-symbolic"))

	for icon, g := range glyphs {
		assert.Equal(t, g, Glyph(places.Icon(icon.Symbolic())), string(icon))
	}
}

func TestDefaultStylesPopulated(t *testing.T) {
	s := Default()
	assert.NotNil(t, s.Popup)
	assert.NotNil(t, s.SelectedItem)
	assert.NotNil(t, s.Cursor)
}
