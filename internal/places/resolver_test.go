package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTag(t *testing.T) {
	r := newAliceResolver()

	got, ok := r.Resolve(TagRef(Home))
	require.True(t, ok)
	assert.Equal(t, Resolved{Path: "/home/alice", Label: "Home", Icon: IconHome}, got)

	got, ok = r.Resolve(TagRef(Downloads))
	require.True(t, ok)
	assert.Equal(t, "Downloads", got.Label)
	assert.Equal(t, IconDownload, got.Icon)
}

func TestResolveTagMissing(t *testing.T) {
	r := newAliceResolver()

	_, ok := r.Resolve(TagRef(Videos))
	assert.False(t, ok, "Videos is defined but does not exist")

	sparse := NewResolver(StaticDirs{Home: "/home/alice"}, nil, aliceFS())
	_, ok = sparse.Resolve(TagRef(Music))
	assert.False(t, ok, "Music is undefined")
}

func TestResolveTagWithoutTableEntryUsesFolderIcon(t *testing.T) {
	r := NewResolver(StaticDirs{Music: "/home/alice/Music"}, NewSpecialDirs(nil), aliceFS())
	got, ok := r.Resolve(TagRef(Music))
	require.True(t, ok)
	assert.Equal(t, IconFolder, got.Icon)
}

func TestResolvePath(t *testing.T) {
	r := newAliceResolver()

	got, ok := r.Resolve(PathRef("/home/alice/src/places"))
	require.True(t, ok)
	assert.Equal(t, Resolved{Path: "/home/alice/src/places", Label: "places", Icon: IconFolder}, got)

	got, ok = r.Resolve(PathRef("/home/alice/notes.txt"))
	require.True(t, ok)
	assert.Equal(t, IconTextGeneric, got.Icon)
	assert.Equal(t, "notes.txt", got.Label)

	got, ok = r.Resolve(PathRef("/home/alice/Desktop"))
	require.True(t, ok)
	assert.Equal(t, "Desktop", got.Label)
	assert.Equal(t, IconDesktop, got.Icon, "special directories keep their icon")
}

func TestResolveRelativePathIsUnderHome(t *testing.T) {
	r := newAliceResolver()

	got, ok := r.Resolve(PathRef("src/places"))
	require.True(t, ok)
	assert.Equal(t, "/home/alice/src/places", got.Path)

	fsys := aliceFS()
	fsys["/home/alice/-n"] = true
	r = NewResolver(aliceDirs(), NewSpecialDirs(aliceDirs()), fsys)
	got, ok = r.Resolve(PathRef("-n"))
	require.True(t, ok)
	assert.Equal(t, Resolved{Path: "/home/alice/-n", Label: "-n", Icon: IconFolder}, got)

	homeless := NewResolver(StaticDirs{}, nil, aliceFS())
	_, ok = homeless.Resolve(PathRef("src/places"))
	assert.False(t, ok, "relative paths need a home directory")
}

func TestResolvePathDropped(t *testing.T) {
	r := newAliceResolver()
	for _, path := range []string{"/", "", "/nonexistent"} {
		_, ok := r.Resolve(PathRef(path))
		assert.False(t, ok, "path %q", path)
	}
}

func TestResolvePathCanonicalizesToTag(t *testing.T) {
	r := newAliceResolver()

	tagged, ok := r.Resolve(TagRef(Home))
	require.True(t, ok)
	for _, path := range []string{"/home/alice", "/home/alice/"} {
		byPath, ok := r.Resolve(PathRef(path))
		require.True(t, ok)
		assert.Equal(t, tagged.Label, byPath.Label)
		assert.Equal(t, tagged.Icon, byPath.Icon)
	}

	docs, ok := r.Resolve(PathRef("/home/alice/Documents"))
	require.True(t, ok)
	assert.Equal(t, "Documents", docs.Label)
	assert.Equal(t, IconDocuments, docs.Icon)
}
