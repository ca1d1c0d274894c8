package places

import (
	"strings"

	"github.com/adrg/xdg"
)

// WellKnown names a directory whose location is defined by the desktop
// environment rather than by the user.
type WellKnown int

const (
	Home WellKnown = iota
	Documents
	Downloads
	Music
	Pictures
	Videos
	Desktop
	Public
	Templates
)

var wellKnownLabels = [...]string{
	Home:      "Home",
	Documents: "Documents",
	Downloads: "Downloads",
	Music:     "Music",
	Pictures:  "Pictures",
	Videos:    "Videos",
	Desktop:   "Desktop",
	Public:    "Public",
	Templates: "Templates",
}

var wellKnownIcons = [...]Icon{
	Home:      IconHome,
	Documents: IconDocuments,
	Downloads: IconDownload,
	Music:     IconMusic,
	Pictures:  IconPictures,
	Videos:    IconVideos,
	Desktop:   IconDesktop,
	Public:    IconPublicShare,
	Templates: IconTemplates,
}

// FavoriteTags lists the tags a favorite may reference, in declaration order.
var FavoriteTags = []WellKnown{Home, Documents, Downloads, Music, Pictures, Videos}

func (w WellKnown) String() string {
	if w < 0 || int(w) >= len(wellKnownLabels) {
		return "Unknown"
	}
	return wellKnownLabels[w]
}

// Icon returns the icon associated with the directory.
func (w WellKnown) Icon() Icon {
	if w < 0 || int(w) >= len(wellKnownIcons) {
		return IconFolder
	}
	return wellKnownIcons[w]
}

// Favoritable reports whether the tag can be stored as a favorite.
func (w WellKnown) Favoritable() bool {
	return w >= Home && w <= Videos
}

// ParseWellKnown maps a stored tag name back to its WellKnown value.
func ParseWellKnown(name string) (WellKnown, bool) {
	trimmed := strings.TrimSpace(name)
	for i, label := range wellKnownLabels {
		if strings.EqualFold(label, trimmed) {
			return WellKnown(i), true
		}
	}
	return 0, false
}

// DirQuery resolves well-known directories to paths. A false result means the
// environment does not define the directory.
type DirQuery interface {
	Lookup(tag WellKnown) (string, bool)
}

// XDGDirs resolves directories from the XDG base and user directory specs.
type XDGDirs struct{}

func (XDGDirs) Lookup(tag WellKnown) (string, bool) {
	var dir string
	switch tag {
	case Home:
		dir = xdg.Home
	case Documents:
		dir = xdg.UserDirs.Documents
	case Downloads:
		dir = xdg.UserDirs.Download
	case Music:
		dir = xdg.UserDirs.Music
	case Pictures:
		dir = xdg.UserDirs.Pictures
	case Videos:
		dir = xdg.UserDirs.Videos
	case Desktop:
		dir = xdg.UserDirs.Desktop
	case Public:
		dir = xdg.UserDirs.PublicShare
	case Templates:
		dir = xdg.UserDirs.Templates
	}
	if strings.TrimSpace(dir) == "" {
		return "", false
	}
	return dir, true
}

// StaticDirs is a fixed DirQuery, handy for tests and for pinning a layout.
type StaticDirs map[WellKnown]string

func (s StaticDirs) Lookup(tag WellKnown) (string, bool) {
	dir, ok := s[tag]
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}
