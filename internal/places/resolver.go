package places

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the slice of the filesystem the resolver needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
}

// OSFS stats the real filesystem.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Resolved is a favorite turned into something displayable.
type Resolved struct {
	Path  string
	Label string
	Icon  Icon
}

// Resolver maps favorites to concrete paths, labels and icons.
type Resolver struct {
	dirs  DirQuery
	table *SpecialDirs
	fs    FS
}

// NewResolver builds a resolver. A nil fsys uses the real filesystem.
func NewResolver(dirs DirQuery, table *SpecialDirs, fsys FS) *Resolver {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &Resolver{dirs: dirs, table: table, fs: fsys}
}

// Resolve returns false when the favorite cannot be shown: its directory is
// undefined, it no longer exists, or it has no usable name. Relative paths are
// taken relative to the home directory.
func (r *Resolver) Resolve(ref FavoriteRef) (Resolved, bool) {
	if path, ok := ref.Path(); ok {
		path, ok = r.absolute(path)
		if !ok {
			return Resolved{}, false
		}
		if tag, ok := r.canonicalTag(path); ok {
			return r.resolveTag(tag)
		}
		return r.resolvePath(path)
	}
	tag, _ := ref.Tag()
	return r.resolveTag(tag)
}

func (r *Resolver) absolute(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), true
	}
	if r.dirs == nil {
		return "", false
	}
	home, ok := r.dirs.Lookup(Home)
	if !ok || !filepath.IsAbs(home) {
		return "", false
	}
	return filepath.Join(home, path), true
}

// canonicalTag reports the favorite tag whose directory is exactly path.
func (r *Resolver) canonicalTag(path string) (WellKnown, bool) {
	if r.dirs == nil || path == "" {
		return 0, false
	}
	clean := filepath.Clean(path)
	for _, tag := range FavoriteTags {
		dir, ok := r.dirs.Lookup(tag)
		if ok && filepath.Clean(dir) == clean {
			return tag, true
		}
	}
	return 0, false
}

func (r *Resolver) resolveTag(tag WellKnown) (Resolved, bool) {
	if r.dirs == nil {
		return Resolved{}, false
	}
	dir, ok := r.dirs.Lookup(tag)
	if !ok {
		return Resolved{}, false
	}
	if _, err := r.fs.Stat(dir); err != nil {
		return Resolved{}, false
	}
	icon := IconFolder
	if known, ok := r.table.Lookup(dir); ok {
		icon = known
	}
	return Resolved{Path: dir, Label: tag.String(), Icon: icon}, true
}

func (r *Resolver) resolvePath(path string) (Resolved, bool) {
	label, ok := baseName(path)
	if !ok {
		return Resolved{}, false
	}
	info, err := r.fs.Stat(path)
	if err != nil {
		return Resolved{}, false
	}
	icon := IconTextGeneric
	if info.IsDir() {
		icon = IconFolder
		if known, ok := r.table.Lookup(path); ok {
			icon = known
		}
	}
	return Resolved{Path: path, Label: label, Icon: icon}, true
}

// baseName returns the final path segment, or false for paths such as the
// filesystem root that have none.
func baseName(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	name := filepath.Base(filepath.Clean(path))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", false
	}
	return name, true
}
