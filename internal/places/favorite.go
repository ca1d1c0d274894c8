package places

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FavoriteRef is a stored favorite: either a well-known tag or a path.
// The zero value is the Home tag.
type FavoriteRef struct {
	tag    WellKnown
	path   string
	isPath bool
}

// TagRef references a well-known directory.
func TagRef(tag WellKnown) FavoriteRef {
	return FavoriteRef{tag: tag}
}

// PathRef references an arbitrary filesystem path.
func PathRef(path string) FavoriteRef {
	return FavoriteRef{path: path, isPath: true}
}

// Tag returns the tag of a tagged reference.
func (r FavoriteRef) Tag() (WellKnown, bool) {
	if r.isPath {
		return 0, false
	}
	return r.tag, true
}

// Path returns the path of a path reference.
func (r FavoriteRef) Path() (string, bool) {
	if !r.isPath {
		return "", false
	}
	return r.path, true
}

func (r FavoriteRef) String() string {
	if r.isPath {
		return fmt.Sprintf("Path(%s)", r.path)
	}
	return r.tag.String()
}

type pathFavorite struct {
	Path string `yaml:"path"`
}

// MarshalYAML writes tags as bare names and paths as a {path: ...} mapping.
func (r FavoriteRef) MarshalYAML() (interface{}, error) {
	if r.isPath {
		return pathFavorite{Path: r.path}, nil
	}
	return r.tag.String(), nil
}

// UnmarshalYAML accepts the two forms written by MarshalYAML plus the file
// manager's own scalar form, Path("/some/dir").
func (r *FavoriteRef) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if path, ok, err := parsePathScalar(value.Value); ok {
			if err != nil {
				return fmt.Errorf("line %d: favorite %q: %w", value.Line, value.Value, err)
			}
			*r = PathRef(path)
			return nil
		}
		tag, ok := ParseWellKnown(value.Value)
		if !ok || !tag.Favoritable() {
			return fmt.Errorf("line %d: unknown favorite %q", value.Line, value.Value)
		}
		*r = TagRef(tag)
		return nil
	case yaml.MappingNode:
		var pf pathFavorite
		if err := value.Decode(&pf); err != nil {
			return err
		}
		if strings.TrimSpace(pf.Path) == "" {
			return fmt.Errorf("line %d: favorite path is empty", value.Line)
		}
		*r = PathRef(pf.Path)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported favorite node", value.Line)
	}
}

// parsePathScalar unwraps Path("..."). ok is false when s is not in that form.
func parsePathScalar(s string) (path string, ok bool, err error) {
	s = strings.TrimSpace(s)
	inner, found := strings.CutPrefix(s, "Path(")
	if !found || !strings.HasSuffix(inner, ")") {
		return "", false, nil
	}
	path, err = strconv.Unquote(strings.TrimSpace(strings.TrimSuffix(inner, ")")))
	if err != nil {
		return "", true, err
	}
	if strings.TrimSpace(path) == "" {
		return "", true, fmt.Errorf("favorite path is empty")
	}
	return path, true, nil
}

// FavoritesConfig is the file manager's favorites document.
type FavoritesConfig struct {
	Favorites []FavoriteRef `config:"favorites"`
}

// DefaultFavoritesConfig is used when the favorites document is unavailable.
func DefaultFavoritesConfig() FavoritesConfig {
	return FavoritesConfig{}
}

// Equal compares the favorites in order.
func (c FavoritesConfig) Equal(other FavoritesConfig) bool {
	return slices.Equal(c.Favorites, other.Favorites)
}

// Clone returns a copy that does not share the backing slice.
func (c FavoritesConfig) Clone() FavoritesConfig {
	return FavoritesConfig{Favorites: slices.Clone(c.Favorites)}
}

// DisplayConfig is the applet's own display preference.
type DisplayConfig struct {
	ShowIcon bool `config:"show_icon"`
}

// DefaultDisplayConfig is used when the applet document is unavailable.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{ShowIcon: true}
}

func (c DisplayConfig) Equal(other DisplayConfig) bool {
	return c == other
}

// Namespaces and schema versions of the two configuration documents.
const (
	AppletID            = "io.github.atomicstack.PlacesPopup"
	AppletConfigVersion = uint64(1)
	FilesID             = "com.system76.CosmicFiles"
	FilesConfigVersion  = uint64(1)
)
