package places

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGTrashNonEmpty(t *testing.T) {
	dir := t.TempDir()
	trash := XDGTrash{Dir: dir}
	assert.False(t, trash.NonEmpty())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte("x"), 0o600))
	assert.True(t, trash.NonEmpty())
}

func TestXDGTrashMissingDirIsEmpty(t *testing.T) {
	trash := XDGTrash{Dir: filepath.Join(t.TempDir(), "missing")}
	assert.False(t, trash.NonEmpty())
}

func TestStaticTrash(t *testing.T) {
	assert.True(t, StaticTrash(true).NonEmpty())
	assert.False(t, StaticTrash(false).NonEmpty())
}
