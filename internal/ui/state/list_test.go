package state

import (
	"testing"

	"github.com/atomicstack/places-popup/internal/places"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(labels ...string) []places.Entry {
	out := make([]places.Entry, len(labels))
	for i, label := range labels {
		out[i] = places.Entry{Label: label, Icon: places.IconFolder, Location: places.PathLocation("/home/carol/" + label)}
	}
	return out
}

func labelsOf(items []Item) []string {
	return labels(items)
}

func TestNewList(t *testing.T) {
	l := NewList(3, entries("Home", "Music"))
	require.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, "3:1", l.Items[1].ID)
	assert.Equal(t, 1, l.Items[1].Index)
	assert.Equal(t, 1, l.IndexOf("3:1"))
	assert.Equal(t, -1, l.IndexOf("2:1"))

	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Home", item.Label)
}

func TestReplaceFollowsSelection(t *testing.T) {
	l := NewList(1, entries("Home", "Music", "Videos"))
	l.Cursor = 1

	l.Replace(2, entries("Downloads", "Home", "Music"))
	assert.Equal(t, uint64(2), l.Generation)
	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Music", item.Label)
	assert.Equal(t, 2, item.Index)
	assert.Equal(t, "2:2", item.ID)

	l.Replace(3, entries("Home"))
	assert.Equal(t, 0, l.Cursor)

	l.Replace(4, nil)
	_, ok = l.Selected()
	assert.False(t, ok)
}

func TestReplaceKeepsFilter(t *testing.T) {
	l := NewList(1, entries("Home", "Music"))
	l.InsertFilterText("mus")
	l.Replace(2, entries("Home", "Music", "Museum"))
	assert.Equal(t, "mus", l.Filter)
	assert.Equal(t, []string{"Music", "Museum"}, labelsOf(l.Items))
}

func TestMoveCursor(t *testing.T) {
	l := NewList(1, entries("a", "b", "c"))
	assert.False(t, l.MoveCursorUp())
	assert.True(t, l.MoveCursorDown())
	assert.True(t, l.MoveCursorEnd())
	assert.Equal(t, 2, l.Cursor)
	assert.False(t, l.MoveCursorDown())
	assert.True(t, l.MoveCursorHome())
	assert.Equal(t, 0, l.Cursor)

	empty := NewList(1, nil)
	empty.Cursor = 5
	assert.False(t, empty.MoveCursorHome())
	assert.Equal(t, 0, empty.Cursor)
	assert.False(t, empty.MoveCursorEnd())
}

func TestMoveCursorPaging(t *testing.T) {
	l := NewList(1, entries("a", "b", "c", "d", "e"))
	assert.True(t, l.MoveCursorPageDown(2))
	assert.Equal(t, 2, l.Cursor)
	assert.True(t, l.MoveCursorPageDown(2))
	assert.Equal(t, 4, l.Cursor)
	assert.False(t, l.MoveCursorPageDown(2))
	assert.True(t, l.MoveCursorPageUp(2))
	assert.Equal(t, 2, l.Cursor)
	assert.True(t, l.MoveCursorPageUp(10))
	assert.Equal(t, 0, l.Cursor)
}

func TestEnsureCursorVisible(t *testing.T) {
	l := NewList(1, entries("a", "b", "c", "d", "e"))
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	assert.Equal(t, 3, l.ViewportOffset)
	assert.Equal(t, []string{"d", "e"}, labelsOf(l.Visible(2)))

	l.Cursor = 1
	l.EnsureCursorVisible(2)
	assert.Equal(t, 1, l.ViewportOffset)

	l.EnsureCursorVisible(0)
	assert.Equal(t, 0, l.ViewportOffset)
	assert.Len(t, l.Visible(0), 5)
}
