package places

// Icon is a semantic icon name following the freedesktop naming scheme.
type Icon string

const (
	IconFolder         Icon = "folder"
	IconHome           Icon = "user-home"
	IconDesktop        Icon = "user-desktop"
	IconDocuments      Icon = "folder-documents"
	IconDownload       Icon = "folder-download"
	IconMusic          Icon = "folder-music"
	IconPictures       Icon = "folder-pictures"
	IconVideos         Icon = "folder-videos"
	IconPublicShare    Icon = "folder-publicshare"
	IconTemplates      Icon = "folder-templates"
	IconFilesystem     Icon = "drive-harddisk"
	IconTextGeneric    Icon = "text-x-generic"
	IconTrashEmpty     Icon = "user-trash"
	IconTrashFull      Icon = "user-trash-full"
	IconFileManagerApp Icon = "system-file-manager"
)

// Symbolic returns the monochrome variant of the icon name.
func (i Icon) Symbolic() string {
	return string(i) + "-symbolic"
}

// TrashIcon picks the trash icon for the current trash state.
func TrashIcon(full bool) Icon {
	if full {
		return IconTrashFull
	}
	return IconTrashEmpty
}
