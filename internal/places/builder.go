package places

import (
	"sort"
)

const trashLabel = "Trash"

// Builder derives the ordered navigation list from configuration.
//
// Every call stats the filesystem synchronously. Results are advisory: they
// reflect the filesystem at call time and a hung mount stalls the caller.
type Builder struct {
	resolver *Resolver
}

// NewBuilder returns a builder backed by resolver.
func NewBuilder(resolver *Resolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build resolves favorites in their stored order, drops the ones that cannot
// be resolved and appends the trash entry.
func (b *Builder) Build(favs FavoritesConfig, trashFull bool) []Entry {
	entries := make([]Entry, 0, len(favs.Favorites)+1)
	for _, ref := range favs.Favorites {
		resolved, ok := b.resolver.Resolve(ref)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Label:    resolved.Label,
			Icon:     resolved.Icon,
			Location: PathLocation(resolved.Path),
		})
	}
	return append(entries, TrashEntry(trashFull))
}

// BuildWellKnown lists every existing special directory, including the
// filesystem root, sorted by label with the trash entry last.
//
// Deprecated: favorites-driven Build is the canonical layout. This mode is
// kept for setups without a favorites document.
func (b *Builder) BuildWellKnown(trashFull bool) []Entry {
	dirs := b.resolver.table.WellKnownPaths()
	entries := make([]Entry, 0, len(dirs)+1)
	for _, dir := range dirs {
		if _, err := b.resolver.fs.Stat(dir.Path); err != nil {
			continue
		}
		entries = append(entries, Entry{
			Label:    dir.Label,
			Icon:     dir.Icon,
			Location: PathLocation(dir.Path),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return append(entries, TrashEntry(trashFull))
}

// TrashEntry is the fixed last row of every list.
func TrashEntry(full bool) Entry {
	return Entry{
		Label:    trashLabel,
		Icon:     TrashIcon(full),
		Location: TrashLocation(),
	}
}
