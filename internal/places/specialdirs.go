package places

import (
	"path/filepath"
	"sort"
)

const filesystemLabel = "Filesystem"

// SpecialDir is one row of the special directory table.
type SpecialDir struct {
	Path  string
	Icon  Icon
	Label string
}

// SpecialDirs maps well-known directory paths to their icons. It is built
// once and never mutated afterwards.
type SpecialDirs struct {
	byPath  map[string]SpecialDir
	ordered []SpecialDir
}

// Home is inserted last so it wins when an unset user directory falls back to
// the home directory.
var specialDirOrder = []WellKnown{
	Documents,
	Downloads,
	Music,
	Pictures,
	Public,
	Templates,
	Videos,
	Desktop,
	Home,
}

// NewSpecialDirs queries every well-known directory once. Directories the
// query cannot resolve are left out.
func NewSpecialDirs(q DirQuery) *SpecialDirs {
	t := &SpecialDirs{byPath: make(map[string]SpecialDir, len(specialDirOrder)+1)}
	if q != nil {
		for _, tag := range specialDirOrder {
			dir, ok := q.Lookup(tag)
			if !ok {
				continue
			}
			t.insert(SpecialDir{Path: dir, Icon: tag.Icon(), Label: tag.String()})
		}
	}
	root := string(filepath.Separator)
	if _, taken := t.byPath[root]; !taken {
		t.insert(SpecialDir{Path: root, Icon: IconFilesystem, Label: filesystemLabel})
	}
	t.ordered = make([]SpecialDir, 0, len(t.byPath))
	for _, dir := range t.byPath {
		t.ordered = append(t.ordered, dir)
	}
	sort.Slice(t.ordered, func(i, j int) bool {
		if t.ordered[i].Label == t.ordered[j].Label {
			return t.ordered[i].Path < t.ordered[j].Path
		}
		return t.ordered[i].Label < t.ordered[j].Label
	})
	return t
}

func (t *SpecialDirs) insert(dir SpecialDir) {
	dir.Path = filepath.Clean(dir.Path)
	t.byPath[dir.Path] = dir
}

// Lookup returns the icon for path when it is a special directory.
func (t *SpecialDirs) Lookup(path string) (Icon, bool) {
	if t == nil || path == "" {
		return "", false
	}
	dir, ok := t.byPath[filepath.Clean(path)]
	if !ok {
		return "", false
	}
	return dir.Icon, true
}

// WellKnownPaths returns every table row sorted by label.
func (t *SpecialDirs) WellKnownPaths() []SpecialDir {
	if t == nil {
		return nil
	}
	out := make([]SpecialDir, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len reports the number of rows in the table.
func (t *SpecialDirs) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ordered)
}
