package places

import (
	"io/fs"
	"path/filepath"
	"time"
)

type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode() }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

func (f fakeInfo) mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// fakeFS maps cleaned paths to "is a directory".
type fakeFS map[string]bool

func (f fakeFS) Stat(name string) (fs.FileInfo, error) {
	dir, ok := f[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: filepath.Base(name), dir: dir}, nil
}

func aliceDirs() StaticDirs {
	return StaticDirs{
		Home:      "/home/alice",
		Documents: "/home/alice/Documents",
		Downloads: "/home/alice/Downloads",
		Music:     "/home/alice/Music",
		Pictures:  "/home/alice/Pictures",
		Videos:    "/home/alice/Videos",
		Desktop:   "/home/alice/Desktop",
	}
}

func aliceFS() fakeFS {
	return fakeFS{
		"/":                      true,
		"/home/alice":            true,
		"/home/alice/Documents":  true,
		"/home/alice/Downloads":  true,
		"/home/alice/Music":      true,
		"/home/alice/Pictures":   true,
		"/home/alice/Desktop":    true,
		"/home/alice/src":        true,
		"/home/alice/notes.txt":  false,
		"/home/alice/src/places": true,
	}
}

func newAliceResolver() *Resolver {
	dirs := aliceDirs()
	return NewResolver(dirs, NewSpecialDirs(dirs), aliceFS())
}
