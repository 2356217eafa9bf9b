package api

import (
	"fmt"

	"vincit.fi/image-gallery/api/apitype"
)

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) String() string {
	return fmt.Sprintf("ErrorCommand{%s}", s.Message)
}

// UpdateGalleryCommand carries everything the front-end needs to draw the
// gallery after a change.
type UpdateGalleryCommand struct {
	Items      []apitype.GalleryItem
	Selected   []apitype.GalleryItem
	Header     *apitype.Header
	ActiveItem *apitype.GalleryItem
}

func (s *UpdateGalleryCommand) String() string {
	return fmt.Sprintf("UpdateGalleryCommand{%d items, %d selected}",
		len(s.Items), len(s.Selected))
}

type Gui interface {
	HandleUpdate(apitype.Command)
	ShowError(apitype.Command)
	Run() error
}
