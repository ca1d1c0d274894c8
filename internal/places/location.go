package places

// LocationKind discriminates the two variants of Location.
type LocationKind int

const (
	LocationTrash LocationKind = iota
	LocationPath
)

// Location is the payload carried by a navigation entry. It is a closed union:
// callers switch on Kind and only read Path for LocationPath.
type Location struct {
	Kind LocationKind
	Path string
}

// TrashLocation returns the trash variant.
func TrashLocation() Location {
	return Location{Kind: LocationTrash}
}

// PathLocation returns a location pointing at a concrete filesystem path.
func PathLocation(path string) Location {
	return Location{Kind: LocationPath, Path: path}
}

func (l Location) String() string {
	switch l.Kind {
	case LocationTrash:
		return "trash://"
	case LocationPath:
		return l.Path
	default:
		return "unknown"
	}
}

// Entry is one row of the navigation list handed to the renderer.
type Entry struct {
	Label    string
	Icon     Icon
	Location Location
}
