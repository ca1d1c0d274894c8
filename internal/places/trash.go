package places

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// TrashQuery reports whether the trash holds anything.
type TrashQuery interface {
	NonEmpty() bool
}

// XDGTrash inspects the files directory of a freedesktop trash.
type XDGTrash struct {
	Dir string
}

// NewXDGTrash points at the home trash under $XDG_DATA_HOME.
func NewXDGTrash() XDGTrash {
	return XDGTrash{Dir: filepath.Join(xdg.DataHome, "Trash", "files")}
}

// NonEmpty treats any read failure as an empty trash.
func (t XDGTrash) NonEmpty() bool {
	f, err := os.Open(t.Dir)
	if err != nil {
		return false
	}
	defer f.Close()
	names, err := f.Readdirnames(1)
	return err == nil && len(names) > 0
}

// StaticTrash always reports the same state.
type StaticTrash bool

func (s StaticTrash) NonEmpty() bool {
	return bool(s)
}
