// Package state holds the popup's list state: the visible entries, the
// cursor, the viewport and the filter.
package state

import (
	"fmt"

	"github.com/atomicstack/places-popup/internal/places"
)

// Item is one row of the popup. Index points back into the entry sequence of
// the generation the item was built from.
type Item struct {
	ID       string
	Label    string
	Icon     places.Icon
	Location places.Location
	Index    int
}

// ItemsFromEntries converts an entry sequence into rows.
func ItemsFromEntries(generation uint64, entries []places.Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			ID:       ItemID(generation, i),
			Label:    e.Label,
			Icon:     e.Icon,
			Location: e.Location,
			Index:    i,
		}
	}
	return items
}

// ItemID names the row at index of a generation.
func ItemID(generation uint64, index int) string {
	return fmt.Sprintf("%d:%d", generation, index)
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// List is the popup's navigation list for one entry generation.
type List struct {
	Generation     uint64
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList builds a list with the cursor on the first row.
func NewList(generation uint64, entries []places.Entry) *List {
	l := &List{LastCursor: -1}
	l.Replace(generation, entries)
	return l
}

// Replace swaps in a rebuilt entry sequence. The filter is kept and the
// cursor follows the previously selected location when it is still listed.
func (l *List) Replace(generation uint64, entries []places.Entry) {
	prev, hadPrev := l.Selected()
	prevOffset := l.ViewportOffset
	l.Generation = generation
	l.Full = ItemsFromEntries(generation, entries)
	l.applyFilter()
	if hadPrev {
		if idx := l.indexOfLocation(prev.Location); idx >= 0 {
			l.Cursor = idx
		}
	}
	if len(l.Items) == 0 || prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

func (l *List) indexOfLocation(loc places.Location) int {
	for i, item := range l.Items {
		if item.Location == loc {
			return i
		}
	}
	return -1
}

// IndexOf returns the visible index for a given item identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the row under the cursor.
func (l *List) Selected() (Item, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

func (l *List) Len() int {
	return len(l.Items)
}
