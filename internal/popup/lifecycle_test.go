package popup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() ID {
	n := 0
	return func() ID {
		n++
		return ID(fmt.Sprintf("popup-%d", n))
	}
}

func TestToggleOpensAndCloses(t *testing.T) {
	l := New(WithIDGenerator(sequentialIDs()))
	_, open := l.Current()
	require.False(t, open)

	tr := l.Toggle()
	assert.Equal(t, OpCreate, tr.Op)
	assert.Equal(t, ID("popup-1"), tr.ID)
	assert.Equal(t, DefaultLimits(), tr.Limits)
	id, open := l.Current()
	require.True(t, open)
	assert.Equal(t, tr.ID, id)

	tr = l.Toggle()
	assert.Equal(t, OpDestroy, tr.Op)
	assert.Equal(t, ID("popup-1"), tr.ID)
	assert.False(t, l.IsOpen())
}

func TestToggleIssuesUniqueIDs(t *testing.T) {
	l := New()
	seen := map[ID]struct{}{}
	for i := 0; i < 50; i++ {
		tr := l.Toggle()
		require.Equal(t, OpCreate, tr.Op)
		_, dup := seen[tr.ID]
		require.False(t, dup, "id %s reused", tr.ID)
		seen[tr.ID] = struct{}{}
		l.Toggle()
	}
}

func TestExternalClose(t *testing.T) {
	l := New(WithIDGenerator(sequentialIDs()))
	assert.False(t, l.ExternalClose("popup-1"), "closed lifecycle ignores close")

	tr := l.Toggle()
	assert.False(t, l.ExternalClose("other"))
	id, open := l.Current()
	assert.True(t, open)
	assert.Equal(t, tr.ID, id)

	assert.True(t, l.ExternalClose(tr.ID))
	assert.False(t, l.IsOpen())
	assert.False(t, l.ExternalClose(tr.ID), "duplicate close is a no-op")
}

func TestStaleCloseAfterReopen(t *testing.T) {
	l := New(WithIDGenerator(sequentialIDs()))
	first := l.Toggle()
	l.Toggle()
	second := l.Toggle()

	assert.False(t, l.ExternalClose(first.ID))
	id, open := l.Current()
	require.True(t, open)
	assert.Equal(t, second.ID, id)
}

func TestLimits(t *testing.T) {
	l := New(WithLimits(DefaultLimits().WithMaxWidth(250)))
	assert.Equal(t, float32(250), l.Toggle().Limits.MaxWidth)

	assert.Equal(t, float32(300), DefaultLimits().WithMaxWidth(900).MaxWidth)
	assert.Equal(t, float32(200), DefaultLimits().WithMaxWidth(10).MaxWidth)

	d := DefaultLimits()
	assert.Equal(t, Limits{MinWidth: 100, MaxWidth: 200, MinHeight: 200, MaxHeight: 1080}, d)
	assert.Equal(t, "create", OpCreate.String())
}
